package model

import (
	"fmt"
	"strings"
	"time"
)

// Visibility controls who can see a person entity.
type Visibility string

const (
	VisibilityPrivate Visibility = "PRIVATE"
	VisibilityGlobal  Visibility = "GLOBAL"
)

// ParseVisibility validates a visibility token, case-insensitively.
func ParseVisibility(s string) (Visibility, error) {
	switch Visibility(strings.ToUpper(s)) {
	case VisibilityPrivate:
		return VisibilityPrivate, nil
	case VisibilityGlobal:
		return VisibilityGlobal, nil
	}
	return "", fmt.Errorf("unknown visibility: %q", s)
}

// Person is one of the entity kinds a link can point to.
type Person struct {
	ID         string `gorm:"primaryKey;uuid;not null"`
	OwnerID    string `gorm:"not null;index"`
	FullName   string `gorm:"not null"`
	ShortBio   string
	Visibility Visibility `gorm:"not null;default:PRIVATE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Person) TableName() string {
	return "persons"
}
