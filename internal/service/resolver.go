package service

import (
	"context"
	"errors"
	"strings"

	"github.com/emrgen/logbook/internal/model"
	"github.com/emrgen/logbook/internal/store"
	"github.com/sirupsen/logrus"
)

const (
	placeholderSnippet = "Preview not available"
	unknownPersonName  = "Unknown Person"
	logbookTitlePrefix = "Logbook for "
)

type outgoingFunc func(ctx context.Context, link *model.EntityLink) (*LinkPreview, error)
type incomingFunc func(ctx context.Context, link *model.EntityLink) (*LinkPreview, error)

// Resolver turns stored links into human-readable previews, dispatching
// on the entity kind of the remote side. Adding a kind means adding one
// strategy to the table; call sites never change.
//
// Resolution never fails the surrounding request: any error degrades a
// single link to its kind's placeholder preview.
type Resolver struct {
	store    store.Store
	outgoing map[model.EntityKind]outgoingFunc
	incoming map[model.EntityKind]incomingFunc
}

func NewResolver(s store.Store) *Resolver {
	r := &Resolver{store: s}
	r.outgoing = map[model.EntityKind]outgoingFunc{
		model.KindDailyLog: r.outgoingDailyLog,
		model.KindPerson:   r.outgoingPerson,
	}
	r.incoming = map[model.EntityKind]incomingFunc{
		model.KindLogSection: r.incomingLogSection,
	}
	return r
}

// ResolveOutgoing renders what a link points to.
func (r *Resolver) ResolveOutgoing(ctx context.Context, link *model.EntityLink) *LinkPreview {
	resolve, ok := r.outgoing[link.TargetKind]
	if !ok {
		return r.outgoingPlaceholder(link)
	}

	preview, err := resolve(ctx, link)
	if err != nil {
		logrus.Debugf("outgoing link %d degraded to placeholder: %v", link.ID, err)
		return r.outgoingPlaceholder(link)
	}
	return preview
}

// ResolveIncoming renders who links to an entity.
func (r *Resolver) ResolveIncoming(ctx context.Context, link *model.EntityLink) *LinkPreview {
	resolve, ok := r.incoming[link.SourceKind]
	if !ok {
		return r.incomingPlaceholder(link)
	}

	preview, err := resolve(ctx, link)
	if err != nil {
		logrus.Debugf("incoming link %d degraded to placeholder: %v", link.ID, err)
		return r.incomingPlaceholder(link)
	}
	return preview
}

// outgoingDailyLog previews a link into another day. The snippet is
// target-centric: prefer a target section that literally mentions the
// anchor text, else the first non-blank summary, else the anchor.
func (r *Resolver) outgoingDailyLog(ctx context.Context, link *model.EntityLink) (*LinkPreview, error) {
	ref, err := model.ParseLogRef(link.TargetID)
	if err != nil {
		return nil, err
	}

	target, err := r.store.GetDailyLog(ctx, int64(ref))
	if err != nil {
		return nil, err
	}

	sections, err := r.store.ListSections(ctx, target.ID)
	if err != nil {
		return nil, err
	}

	preview := &LinkPreview{
		SourceSectionType: r.sourceSectionType(ctx, link),
		AnchorText:        link.AnchorText,
		RemoteKind:        model.KindDailyLog,
		RemoteID:          link.TargetID,
		RemoteTitle:       logbookTitlePrefix + target.LogDate,
		RemoteSnippet:     bestTargetSnippet(sections, link.AnchorText),
	}
	return preview, nil
}

// outgoingPerson previews a link to a person. A person that no longer
// exists renders as a synthetic "Unknown Person" rather than failing.
func (r *Resolver) outgoingPerson(ctx context.Context, link *model.EntityLink) (*LinkPreview, error) {
	ref, err := model.ParsePersonRef(link.TargetID)
	if err != nil {
		return nil, err
	}

	preview := &LinkPreview{
		SourceSectionType: r.sourceSectionType(ctx, link),
		AnchorText:        link.AnchorText,
		RemoteKind:        model.KindPerson,
		RemoteID:          link.TargetID,
	}

	person, err := r.store.GetPerson(ctx, ref.String())
	if errors.Is(err, store.ErrNotFound) {
		preview.RemoteTitle = unknownPersonName
		preview.RemoteSnippet = placeholderSnippet
		return preview, nil
	}
	if err != nil {
		return nil, err
	}

	preview.RemoteTitle = person.FullName
	preview.RemoteSnippet = summaryPreview(person.ShortBio)
	return preview, nil
}

// incomingLogSection previews a backlink from a log section: a window
// around the anchor text in the source summary, falling back to a
// truncated preview when the anchor is not literally present.
func (r *Resolver) incomingLogSection(ctx context.Context, link *model.EntityLink) (*LinkPreview, error) {
	ref, err := model.ParseSectionRef(link.SourceID)
	if err != nil {
		return nil, err
	}

	section, err := r.store.GetSection(ctx, int64(ref))
	if err != nil {
		return nil, err
	}

	sourceLog, err := r.store.GetDailyLog(ctx, section.DailyLogID)
	if err != nil {
		return nil, err
	}

	snippet := snippetAround(section.Summary, link.AnchorText)
	if snippet == "" {
		snippet = summaryPreview(section.Summary)
	}
	if strings.TrimSpace(snippet) == "" {
		snippet = link.AnchorText
	}

	preview := &LinkPreview{
		AnchorText:        link.AnchorText,
		RemoteKind:        model.KindLogSection,
		RemoteSectionType: section.SectionType,
		RemoteID:          link.SourceID,
		RemoteTitle:       logbookTitlePrefix + sourceLog.LogDate,
		RemoteSnippet:     snippet,
	}
	return preview, nil
}

// sourceSectionType is outgoing preview metadata only; failures leave
// it blank instead of degrading the whole preview.
func (r *Resolver) sourceSectionType(ctx context.Context, link *model.EntityLink) model.SectionType {
	if link.SourceKind != model.KindLogSection {
		return ""
	}
	ref, err := model.ParseSectionRef(link.SourceID)
	if err != nil {
		return ""
	}
	section, err := r.store.GetSection(ctx, int64(ref))
	if err != nil {
		return ""
	}
	return section.SectionType
}

func (r *Resolver) outgoingPlaceholder(link *model.EntityLink) *LinkPreview {
	return &LinkPreview{
		AnchorText:    link.AnchorText,
		RemoteKind:    link.TargetKind,
		RemoteID:      link.TargetID,
		RemoteTitle:   link.AnchorText,
		RemoteSnippet: placeholderSnippet,
	}
}

func (r *Resolver) incomingPlaceholder(link *model.EntityLink) *LinkPreview {
	return &LinkPreview{
		AnchorText:    link.AnchorText,
		RemoteKind:    link.SourceKind,
		RemoteID:      link.SourceID,
		RemoteTitle:   link.AnchorText,
		RemoteSnippet: placeholderSnippet,
	}
}

// bestTargetSnippet picks the most useful target-side snippet:
//  1. a section whose summary literally contains the anchor text
//  2. the first non-blank section summary, word-boundary truncated
//  3. the anchor text itself
func bestTargetSnippet(sections []*model.LogSection, anchor string) string {
	for _, s := range sections {
		if strings.TrimSpace(s.Summary) == "" {
			continue
		}
		if snippet := snippetAround(s.Summary, anchor); snippet != "" {
			return snippet
		}
	}

	for _, s := range sections {
		if strings.TrimSpace(s.Summary) != "" {
			return summaryPreview(s.Summary)
		}
	}

	return anchor
}
