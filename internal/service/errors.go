package service

import (
	"errors"

	"github.com/emrgen/logbook/internal/store"
)

var (
	// ErrDateRange is returned when a history range spans more than 7
	// inclusive days, or ends before it starts.
	ErrDateRange = errors.New("date range cannot span more than 7 days")
	// ErrSortField is returned when a sort field is not on the allow-list.
	ErrSortField = errors.New("sort field is not allowed")
)

// allowedSortFields is the sort allow-list for daily log listings.
var allowedSortFields = map[string]bool{
	"log_date": true,
}

// validateSort applies the default ordering and rejects fields outside
// the allow-list. Validation failures are terminal, never retried.
func validateSort(sort store.SortOrder) (store.SortOrder, error) {
	if sort.Field == "" {
		return store.SortOrder{Field: "log_date", Desc: true}, nil
	}
	if !allowedSortFields[sort.Field] {
		return store.SortOrder{}, ErrSortField
	}
	return sort, nil
}
