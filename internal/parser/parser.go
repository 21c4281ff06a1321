// Package parser extracts embedded entity references from free text.
//
// The micro-syntax is [anchor text](type:id), e.g.
//
//	Talked to [Alice](person:p1) about [the launch](log:42).
//
// The type token is case-insensitive and "log" aliases DAILY_LOG.
package parser

import (
	"regexp"

	"github.com/emrgen/logbook/internal/model"
)

var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([A-Za-z_]+):([^)\s]+)\)`)

// Link is one extracted reference, in document order.
type Link struct {
	AnchorText string
	TargetKind model.EntityKind
	TargetID   string
}

// Parse scans text left to right and returns every well-formed
// reference it contains. References with an unrecognized type token are
// skipped, not fatal: the rest of the text is still parsed. Malformed
// fragments simply never match.
func Parse(text string) []Link {
	matches := linkPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		kind, ok := model.ParseEntityKind(m[2])
		if !ok {
			continue
		}
		links = append(links, Link{
			AnchorText: m[1],
			TargetKind: kind,
			TargetID:   m[3],
		})
	}

	return links
}
