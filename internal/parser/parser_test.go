package parser

import (
	"testing"

	"github.com/emrgen/logbook/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		links   []Link
	}{
		{
			name:    "two links in order",
			summary: "Talked to [Alice](person:p1) about [the launch](log:42).",
			links: []Link{
				{AnchorText: "Alice", TargetKind: model.KindPerson, TargetID: "p1"},
				{AnchorText: "the launch", TargetKind: model.KindDailyLog, TargetID: "42"},
			},
		},
		{
			name:    "no links",
			summary: "Slept in, skipped the gym.",
			links:   []Link{},
		},
		{
			name:    "empty summary",
			summary: "",
			links:   []Link{},
		},
		{
			name:    "kind token is case insensitive",
			summary: "Met [Bob](PERSON:p2) and [Carol](Person:p3).",
			links: []Link{
				{AnchorText: "Bob", TargetKind: model.KindPerson, TargetID: "p2"},
				{AnchorText: "Carol", TargetKind: model.KindPerson, TargetID: "p3"},
			},
		},
		{
			name:    "log section kind",
			summary: "Continued from [yesterday evening](log_section:17).",
			links: []Link{
				{AnchorText: "yesterday evening", TargetKind: model.KindLogSection, TargetID: "17"},
			},
		},
		{
			name:    "unknown kind is skipped",
			summary: "Saw [the dog](animal:9) and [Dave](person:p4).",
			links: []Link{
				{AnchorText: "Dave", TargetKind: model.KindPerson, TargetID: "p4"},
			},
		},
		{
			name:    "malformed token is plain text",
			summary: "Broken [anchor](person p5) and [no target]() here.",
			links:   []Link{},
		},
		{
			name:    "missing anchor is plain text",
			summary: "Empty () target [](person:p6).",
			links:   []Link{},
		},
		{
			name:    "id stops at whitespace",
			summary: "See [notes](log:42 extra).",
			links:   []Link{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.summary)
			if len(tt.links) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.links, got)
		})
	}
}
