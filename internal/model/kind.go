package model

import "strings"

// EntityKind tags the two ends of an entity link. The set is closed in
// practice; adding a kind means adding a constant here and a resolution
// strategy in the service layer.
type EntityKind string

const (
	KindLogSection EntityKind = "LOG_SECTION"
	KindDailyLog   EntityKind = "DAILY_LOG"
	KindPerson     EntityKind = "PERSON"
)

// kindTokens maps the case-folded link micro-syntax tokens to kinds.
// "log" is kept as an alias for DAILY_LOG for backward compatibility
// with older summaries.
var kindTokens = map[string]EntityKind{
	"log_section": KindLogSection,
	"daily_log":   KindDailyLog,
	"log":         KindDailyLog,
	"person":      KindPerson,
}

// ParseEntityKind maps a link type token to its kind. The token is
// case-insensitive. Unknown tokens report ok=false and are skipped by
// the parser rather than failing the whole text.
func ParseEntityKind(token string) (EntityKind, bool) {
	kind, ok := kindTokens[strings.ToLower(token)]
	return kind, ok
}
