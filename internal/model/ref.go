package model

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Links store ids as untyped strings to keep one table across entity
// kinds. The refs below put the types back on before an id crosses a
// resolver boundary: each kind has its own parse with its own notion of
// a valid key.

// LogRef is a validated daily log identifier.
type LogRef int64

func ParseLogRef(s string) (LogRef, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid daily log ref: %q", s)
	}
	return LogRef(id), nil
}

func (r LogRef) String() string {
	return strconv.FormatInt(int64(r), 10)
}

// SectionRef is a validated log section identifier.
type SectionRef int64

func ParseSectionRef(s string) (SectionRef, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid log section ref: %q", s)
	}
	return SectionRef(id), nil
}

func (r SectionRef) String() string {
	return strconv.FormatInt(int64(r), 10)
}

// PersonRef is a validated person identifier (UUID).
type PersonRef string

func ParsePersonRef(s string) (PersonRef, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid person ref: %q", s)
	}
	return PersonRef(id.String()), nil
}

func (r PersonRef) String() string {
	return string(r)
}
