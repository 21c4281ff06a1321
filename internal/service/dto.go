package service

import "github.com/emrgen/logbook/internal/model"

// SectionView is the lightweight section shape returned by reads.
type SectionView struct {
	SectionType model.SectionType `json:"section_type"`
	Summary     string            `json:"summary"`
	Mood        string            `json:"mood,omitempty"`
}

// LinkPreview is a resolved, human-readable rendering of one stored
// link. For outgoing links the remote side is the target; for incoming
// backlinks it is the source.
type LinkPreview struct {
	// SourceSectionType names the section the link originates from.
	// Filled for outgoing links only.
	SourceSectionType model.SectionType `json:"source_section_type,omitempty"`
	AnchorText        string            `json:"anchor_text"`
	RemoteKind        model.EntityKind  `json:"remote_kind"`
	// RemoteSectionType is filled for incoming links whose source is a
	// log section.
	RemoteSectionType model.SectionType `json:"remote_section_type,omitempty"`
	RemoteID          string            `json:"remote_id"`
	RemoteTitle       string            `json:"remote_title"`
	RemoteSnippet     string            `json:"remote_snippet"`
}

// FullLogbook is one assembled owner-day: its sections plus both link
// directions, previews resolved.
type FullLogbook struct {
	LogID         int64         `json:"log_id"`
	LogDate       string        `json:"log_date"`
	Sections      []SectionView `json:"sections"`
	OutgoingLinks []LinkPreview `json:"outgoing_links"`
	IncomingLinks []LinkPreview `json:"incoming_links"`
}

// LogbookPreview is one day of paginated history.
type LogbookPreview struct {
	LogID          int64    `json:"log_id"`
	LogDate        string   `json:"log_date"`
	SummaryPreview string   `json:"summary_preview"`
	Moods          []string `json:"moods"`
}

// HistoryPage is one page of logbook previews. Total and Items come
// from independent queries and may drift under concurrent writes.
type HistoryPage struct {
	Items []*LogbookPreview `json:"items"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
	Total int64             `json:"total"`
}

// GraphNode is one keyword of the concept map. The anchor text doubles
// as id and label; the weight counts its total uses.
type GraphNode struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

// GraphEdge is a same-day co-occurrence of two keywords. Source and
// target are in lexical order so the pair is direction-free.
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// GraphData is the derived keyword graph of one owner's link corpus.
type GraphData struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}
