package store

import (
	"context"

	"github.com/emrgen/logbook/internal/model"
	"gorm.io/gorm"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

// GormStore implements Store on a gorm connection. The DB must be
// opened with TranslateError so uniqueness violations arrive as
// gorm.ErrDuplicatedKey regardless of the driver.
type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) CreateDailyLog(ctx context.Context, dailyLog *model.DailyLog) error {
	return translate(g.db.WithContext(ctx).Create(dailyLog).Error)
}

func (g *GormStore) GetDailyLog(ctx context.Context, id int64) (*model.DailyLog, error) {
	var dailyLog model.DailyLog
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&dailyLog).Error
	if err != nil {
		return nil, translate(err)
	}
	return &dailyLog, nil
}

func (g *GormStore) GetDailyLogByDate(ctx context.Context, ownerID, date string) (*model.DailyLog, error) {
	var dailyLog model.DailyLog
	err := g.db.WithContext(ctx).Where("owner_id = ? AND log_date = ?", ownerID, date).First(&dailyLog).Error
	if err != nil {
		return nil, translate(err)
	}
	return &dailyLog, nil
}

func (g *GormStore) ListDailyLogs(ctx context.Context, ownerID, start, end string, sort SortOrder, offset, limit int) ([]*model.DailyLog, error) {
	order := sort.Field
	if sort.Desc {
		order += " desc"
	}

	var logs []*model.DailyLog
	err := g.db.WithContext(ctx).
		Where("owner_id = ? AND log_date BETWEEN ? AND ?", ownerID, start, end).
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&logs).Error
	return logs, translate(err)
}

func (g *GormStore) CountDailyLogs(ctx context.Context, ownerID, start, end string) (int64, error) {
	var total int64
	err := g.db.WithContext(ctx).
		Model(&model.DailyLog{}).
		Where("owner_id = ? AND log_date BETWEEN ? AND ?", ownerID, start, end).
		Count(&total).Error
	return total, translate(err)
}

func (g *GormStore) ListDailyLogsByOwner(ctx context.Context, ownerID string, sort SortOrder, offset, limit int) ([]*model.DailyLog, error) {
	order := sort.Field
	if sort.Desc {
		order += " desc"
	}

	var logs []*model.DailyLog
	err := g.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&logs).Error
	return logs, translate(err)
}

func (g *GormStore) CountDailyLogsByOwner(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	err := g.db.WithContext(ctx).
		Model(&model.DailyLog{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error
	return total, translate(err)
}

func (g *GormStore) DeleteDailyLog(ctx context.Context, id int64) error {
	return translate(g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DailyLog{}).Error)
}

func (g *GormStore) ListLogOwners(ctx context.Context) ([]string, error) {
	var owners []string
	err := g.db.WithContext(ctx).
		Model(&model.DailyLog{}).
		Distinct("owner_id").
		Pluck("owner_id", &owners).Error
	return owners, translate(err)
}

func (g *GormStore) CreateSection(ctx context.Context, section *model.LogSection) error {
	return translate(g.db.WithContext(ctx).Create(section).Error)
}

func (g *GormStore) UpdateSection(ctx context.Context, section *model.LogSection) error {
	return translate(g.db.WithContext(ctx).Save(section).Error)
}

func (g *GormStore) GetSection(ctx context.Context, id int64) (*model.LogSection, error) {
	var section model.LogSection
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&section).Error
	if err != nil {
		return nil, translate(err)
	}
	return &section, nil
}

func (g *GormStore) GetSectionByType(ctx context.Context, dailyLogID int64, sectionType model.SectionType) (*model.LogSection, error) {
	var section model.LogSection
	err := g.db.WithContext(ctx).
		Where("daily_log_id = ? AND section_type = ?", dailyLogID, sectionType).
		First(&section).Error
	if err != nil {
		return nil, translate(err)
	}
	return &section, nil
}

func (g *GormStore) ListSections(ctx context.Context, dailyLogID int64) ([]*model.LogSection, error) {
	var sections []*model.LogSection
	err := g.db.WithContext(ctx).
		Where("daily_log_id = ?", dailyLogID).
		Order("id").
		Find(&sections).Error
	return sections, translate(err)
}

func (g *GormStore) ListSectionsByLogIDs(ctx context.Context, dailyLogIDs []int64) ([]*model.LogSection, error) {
	if len(dailyLogIDs) == 0 {
		return nil, nil
	}
	var sections []*model.LogSection
	err := g.db.WithContext(ctx).
		Where("daily_log_id in (?)", dailyLogIDs).
		Order("id").
		Find(&sections).Error
	return sections, translate(err)
}

func (g *GormStore) DeleteSectionsByLog(ctx context.Context, dailyLogID int64) error {
	return translate(g.db.WithContext(ctx).Where("daily_log_id = ?", dailyLogID).Delete(&model.LogSection{}).Error)
}

func (g *GormStore) CreateLinks(ctx context.Context, links []*model.EntityLink) error {
	if len(links) == 0 {
		return nil
	}
	return translate(g.db.WithContext(ctx).Create(links).Error)
}

func (g *GormStore) DeleteLinksBySource(ctx context.Context, kind model.EntityKind, sourceID string) error {
	return translate(g.db.WithContext(ctx).
		Where("source_kind = ? AND source_id = ?", kind, sourceID).
		Delete(&model.EntityLink{}).Error)
}

func (g *GormStore) ListLinksBySources(ctx context.Context, kind model.EntityKind, sourceIDs []string) ([]*model.EntityLink, error) {
	if len(sourceIDs) == 0 {
		return nil, nil
	}
	var links []*model.EntityLink
	err := g.db.WithContext(ctx).
		Where("source_kind = ? AND source_id in (?)", kind, sourceIDs).
		Order("id").
		Find(&links).Error
	return links, translate(err)
}

func (g *GormStore) ListLinksByTarget(ctx context.Context, kind model.EntityKind, targetID string) ([]*model.EntityLink, error) {
	var links []*model.EntityLink
	err := g.db.WithContext(ctx).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Order("id").
		Find(&links).Error
	return links, translate(err)
}

func (g *GormStore) ListOwnerLinks(ctx context.Context, ownerID string) ([]*OwnedLink, error) {
	var links []*OwnedLink
	err := g.db.WithContext(ctx).
		Table("log_entity_links").
		Select("log_entity_links.*, log_sections.daily_log_id AS daily_log_id").
		Joins("JOIN log_sections ON log_sections.id = CAST(log_entity_links.source_id AS integer)").
		Joins("JOIN daily_logs ON daily_logs.id = log_sections.daily_log_id").
		Where("daily_logs.owner_id = ? AND log_entity_links.source_kind = ?", ownerID, model.KindLogSection).
		Order("log_entity_links.id").
		Scan(&links).Error
	return links, translate(err)
}

func (g *GormStore) CreatePerson(ctx context.Context, person *model.Person) error {
	return translate(g.db.WithContext(ctx).Create(person).Error)
}

func (g *GormStore) GetPerson(ctx context.Context, id string) (*model.Person, error) {
	var person model.Person
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&person).Error
	if err != nil {
		return nil, translate(err)
	}
	return &person, nil
}

func (g *GormStore) ListVisiblePersons(ctx context.Context, ownerID string, visibility model.Visibility) ([]*model.Person, error) {
	var persons []*model.Person
	err := g.db.WithContext(ctx).
		Where("owner_id = ? OR visibility = ?", ownerID, visibility).
		Order("full_name").
		Find(&persons).Error
	return persons, translate(err)
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
