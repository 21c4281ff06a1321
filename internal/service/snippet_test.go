package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSnippetAround(t *testing.T) {
	t.Run("short summary passes through", func(t *testing.T) {
		assert.Equal(t, "Coffee with Alice downtown.", snippetAround("Coffee with Alice downtown.", "Alice"))
	})

	t.Run("missing anchor yields empty", func(t *testing.T) {
		assert.Equal(t, "", snippetAround("Coffee downtown.", "Alice"))
	})

	t.Run("long summary is windowed with ellipses", func(t *testing.T) {
		padding := strings.Repeat("a", 150)
		summary := padding + " Alice " + padding

		snippet := snippetAround(summary, "Alice")
		assert.True(t, strings.HasPrefix(snippet, "..."))
		assert.True(t, strings.HasSuffix(snippet, "..."))
		assert.Contains(t, snippet, "Alice")
		assert.LessOrEqual(t, len(snippet), len("Alice")+2*snippetRadius+6)
	})

	t.Run("multi-byte text cuts on rune boundaries", func(t *testing.T) {
		padding := strings.Repeat("é", 150)
		summary := padding + " Alice " + padding

		snippet := snippetAround(summary, "Alice")
		assert.True(t, utf8.ValidString(snippet))
		assert.True(t, strings.HasPrefix(snippet, "..."))
		assert.True(t, strings.HasSuffix(snippet, "..."))
		assert.Contains(t, snippet, "Alice")
		assert.LessOrEqual(t, utf8.RuneCountInString(snippet), utf8.RuneCountInString("Alice")+2*snippetRadius+6)
	})

	t.Run("anchor near start keeps the head", func(t *testing.T) {
		summary := "Alice " + strings.Repeat("b", 150)

		snippet := snippetAround(summary, "Alice")
		assert.True(t, strings.HasPrefix(snippet, "Alice"))
		assert.True(t, strings.HasSuffix(snippet, "..."))
	})
}

func TestSummaryPreview(t *testing.T) {
	t.Run("short summary passes through", func(t *testing.T) {
		assert.Equal(t, "Early night.", summaryPreview("Early night."))
	})

	t.Run("long summary breaks on a word", func(t *testing.T) {
		summary := strings.Repeat("word ", 40)

		preview := summaryPreview(summary)
		assert.True(t, strings.HasSuffix(preview, "..."))
		assert.LessOrEqual(t, len(preview), previewMaxLen+3)
		assert.True(t, strings.HasSuffix(strings.TrimSuffix(preview, "..."), "word"))
	})

	t.Run("unbroken text gets a hard cut", func(t *testing.T) {
		summary := strings.Repeat("a", 150)

		preview := summaryPreview(summary)
		assert.Equal(t, strings.Repeat("a", previewMaxLen)+"...", preview)
	})

	t.Run("multi-byte text counts runes not bytes", func(t *testing.T) {
		summary := strings.Repeat("é", 150)

		preview := summaryPreview(summary)
		assert.True(t, utf8.ValidString(preview))
		assert.Equal(t, strings.Repeat("é", previewMaxLen)+"...", preview)
	})
}

func TestFirstNonBlank(t *testing.T) {
	assert.Equal(t, "b", firstNonBlank([]string{"", "   ", "b", "c"}))
	assert.Equal(t, "", firstNonBlank([]string{"", "  "}))
	assert.Equal(t, "", firstNonBlank(nil))
}
