package service

import (
	"strings"
	"unicode/utf8"
)

const (
	// snippetRadius is the context window kept on each side of an
	// anchor occurrence.
	snippetRadius = 100
	// previewMaxLen caps plain summary previews.
	previewMaxLen = 100
)

// snippetAround returns a window of up to snippetRadius characters on
// each side of the first occurrence of anchor in summary, with ellipses
// where the window cuts into the text. Returns "" when the anchor does
// not literally occur.
func snippetAround(summary, anchor string) string {
	idx := strings.Index(summary, anchor)
	if idx < 0 {
		return ""
	}

	// window in runes, never bytes, so a cut cannot split a rune
	runes := []rune(summary)
	anchorStart := utf8.RuneCountInString(summary[:idx])
	anchorLen := utf8.RuneCountInString(anchor)

	start := anchorStart - snippetRadius
	if start < 0 {
		start = 0
	}
	end := anchorStart + anchorLen + snippetRadius
	if end > len(runes) {
		end = len(runes)
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(runes) {
		snippet = snippet + "..."
	}

	return snippet
}

// summaryPreview truncates a summary to previewMaxLen characters on a
// word boundary, appending an ellipsis. Short summaries pass through
// unchanged.
func summaryPreview(summary string) string {
	runes := []rune(summary)
	if len(runes) <= previewMaxLen {
		return summary
	}

	// cut at the last space before the limit so no word is split
	head := string(runes[:previewMaxLen+1])
	if lastSpace := strings.LastIndex(head, " "); lastSpace > 0 {
		return head[:lastSpace] + "..."
	}

	return string(runes[:previewMaxLen]) + "..."
}

// firstNonBlank returns the first string with visible content.
func firstNonBlank(values []string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
