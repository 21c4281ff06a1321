package store

import (
	"context"

	"github.com/emrgen/logbook/internal/model"
)

// SortOrder is the caller-validated sort of daily log listings. The
// allowed field set lives at the service boundary; the store just
// applies whatever survived validation.
type SortOrder struct {
	Field string
	Desc  bool
}

// OwnedLink pairs a section-sourced link with the day it belongs to.
// The keyword graph builder groups links by day through this shape.
type OwnedLink struct {
	model.EntityLink `gorm:"embedded"`
	DailyLogID       int64
}

type Store interface {
	DailyLogStore
	SectionStore
	LinkStore
	PersonStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type DailyLogStore interface {
	// CreateDailyLog creates a new daily log. A (owner, date) collision
	// surfaces as ErrConflict.
	CreateDailyLog(ctx context.Context, dailyLog *model.DailyLog) error
	// GetDailyLog retrieves a daily log by id.
	GetDailyLog(ctx context.Context, id int64) (*model.DailyLog, error)
	// GetDailyLogByDate retrieves a daily log by its natural key.
	GetDailyLogByDate(ctx context.Context, ownerID, date string) (*model.DailyLog, error)
	// ListDailyLogs retrieves one page of an owner's logs in [start, end].
	ListDailyLogs(ctx context.Context, ownerID, start, end string, sort SortOrder, offset, limit int) ([]*model.DailyLog, error)
	// CountDailyLogs counts an owner's logs in [start, end].
	CountDailyLogs(ctx context.Context, ownerID, start, end string) (int64, error)
	// ListDailyLogsByOwner retrieves one page of all of an owner's logs.
	ListDailyLogsByOwner(ctx context.Context, ownerID string, sort SortOrder, offset, limit int) ([]*model.DailyLog, error)
	// CountDailyLogsByOwner counts all of an owner's logs.
	CountDailyLogsByOwner(ctx context.Context, ownerID string) (int64, error)
	// DeleteDailyLog deletes a daily log row. Sections and links are the
	// caller's responsibility, inside one transaction.
	DeleteDailyLog(ctx context.Context, id int64) error
	// ListLogOwners retrieves the distinct owners that have any log.
	ListLogOwners(ctx context.Context) ([]string, error)
}

type SectionStore interface {
	// CreateSection creates a section skeleton. A (log, type) collision
	// surfaces as ErrConflict.
	CreateSection(ctx context.Context, section *model.LogSection) error
	// UpdateSection persists section changes.
	UpdateSection(ctx context.Context, section *model.LogSection) error
	// GetSection retrieves a section by id.
	GetSection(ctx context.Context, id int64) (*model.LogSection, error)
	// GetSectionByType retrieves a section by its natural key.
	GetSectionByType(ctx context.Context, dailyLogID int64, sectionType model.SectionType) (*model.LogSection, error)
	// ListSections retrieves all sections of one day.
	ListSections(ctx context.Context, dailyLogID int64) ([]*model.LogSection, error)
	// ListSectionsByLogIDs retrieves the sections of several days at once.
	ListSectionsByLogIDs(ctx context.Context, dailyLogIDs []int64) ([]*model.LogSection, error)
	// DeleteSectionsByLog deletes all sections of one day.
	DeleteSectionsByLog(ctx context.Context, dailyLogID int64) error
}

type LinkStore interface {
	// CreateLinks bulk-inserts derived links.
	CreateLinks(ctx context.Context, links []*model.EntityLink) error
	// DeleteLinksBySource deletes every link originating at one entity.
	DeleteLinksBySource(ctx context.Context, kind model.EntityKind, sourceID string) error
	// ListLinksBySources retrieves outgoing links for a set of sources.
	ListLinksBySources(ctx context.Context, kind model.EntityKind, sourceIDs []string) ([]*model.EntityLink, error)
	// ListLinksByTarget retrieves incoming links (backlinks) of one entity.
	ListLinksByTarget(ctx context.Context, kind model.EntityKind, targetID string) ([]*model.EntityLink, error)
	// ListOwnerLinks retrieves every section-sourced link of one owner,
	// each paired with its daily log id.
	ListOwnerLinks(ctx context.Context, ownerID string) ([]*OwnedLink, error)
}

type PersonStore interface {
	// CreatePerson creates a person.
	CreatePerson(ctx context.Context, person *model.Person) error
	// GetPerson retrieves a person by id.
	GetPerson(ctx context.Context, id string) (*model.Person, error)
	// ListVisiblePersons retrieves the persons an owner may see: their
	// own plus any with the given visibility.
	ListVisiblePersons(ctx context.Context, ownerID string, visibility model.Visibility) ([]*model.Person, error)
}
