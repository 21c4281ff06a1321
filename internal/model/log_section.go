package model

import (
	"fmt"
	"strings"
	"time"
)

// SectionType divides a daily log into typed parts. At most one section
// of each type exists per day.
type SectionType string

const (
	SectionMorning   SectionType = "MORNING"
	SectionAfternoon SectionType = "AFTERNOON"
	SectionEvening   SectionType = "EVENING"
)

// ParseSectionType validates a section type token, case-insensitively.
func ParseSectionType(s string) (SectionType, error) {
	switch SectionType(strings.ToUpper(s)) {
	case SectionMorning:
		return SectionMorning, nil
	case SectionAfternoon:
		return SectionAfternoon, nil
	case SectionEvening:
		return SectionEvening, nil
	}
	return "", fmt.Errorf("unknown section type: %q", s)
}

// LogSection holds the free text and optional mood of one part of a
// day. Links are derived from Summary on every save; the section never
// owns them directly.
type LogSection struct {
	ID          int64       `gorm:"primaryKey;autoIncrement"`
	DailyLogID  int64       `gorm:"not null;uniqueIndex:idx_log_sections_log_type"`
	SectionType SectionType `gorm:"not null;uniqueIndex:idx_log_sections_log_type"`
	Summary     string
	Mood        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (LogSection) TableName() string {
	return "log_sections"
}
