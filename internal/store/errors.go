package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a direct id or natural-key lookup
	// finds no row.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when an insert violates a uniqueness
	// constraint. The service surfaces it unmasked.
	ErrConflict = errors.New("record already exists")
)

// translate maps gorm errors onto the store sentinels so callers never
// depend on gorm directly.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}
