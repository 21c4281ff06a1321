package service

import (
	"context"
	"errors"
	"time"

	"github.com/emrgen/logbook/internal/cache"
	"github.com/emrgen/logbook/internal/model"
	"github.com/emrgen/logbook/internal/parser"
	"github.com/emrgen/logbook/internal/queue"
	"github.com/emrgen/logbook/internal/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LogbookService owns the write path of the journal: day and section
// upserts and the link index derived from section summaries. The cache
// and the audit queue are optional; a nil value disables the concern.
type LogbookService struct {
	store    store.Store
	cache    cache.Cache
	audit    queue.AuditQueue
	resolver *Resolver
	now      func() time.Time
}

func NewLogbookService(s store.Store, c cache.Cache, audit queue.AuditQueue) *LogbookService {
	return &LogbookService{
		store:    s,
		cache:    c,
		audit:    audit,
		resolver: NewResolver(s),
		now:      time.Now,
	}
}

// FindOrCreateDailyLog returns the owner's log for the given date,
// creating it when absent. A concurrent create of the same (owner,
// date) pair surfaces as store.ErrConflict; callers retry by reading.
func (s *LogbookService) FindOrCreateDailyLog(ctx context.Context, ownerID string, date time.Time) (*model.DailyLog, error) {
	logDate := model.FormatDate(date)

	dailyLog, err := s.store.GetDailyLogByDate(ctx, ownerID, logDate)
	if err == nil {
		return dailyLog, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	dailyLog = &model.DailyLog{
		OwnerID: ownerID,
		LogDate: logDate,
	}
	if err := s.store.CreateDailyLog(ctx, dailyLog); err != nil {
		return nil, err
	}
	return dailyLog, nil
}

// SaveSection upserts one section of the owner's day and rebuilds its
// derived links. The section write, the link delete and the link
// re-insert commit together or not at all, so a reader never observes a
// summary whose links belong to an older revision.
func (s *LogbookService) SaveSection(ctx context.Context, ownerID string, date time.Time, sectionType model.SectionType, summary, mood string) (*model.LogSection, error) {
	dailyLog, err := s.FindOrCreateDailyLog(ctx, ownerID, date)
	if err != nil {
		return nil, err
	}

	var section *model.LogSection
	err = s.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		section, err = tx.GetSectionByType(ctx, dailyLog.ID, sectionType)
		if errors.Is(err, store.ErrNotFound) {
			section = &model.LogSection{
				DailyLogID:  dailyLog.ID,
				SectionType: sectionType,
			}
			if err := tx.CreateSection(ctx, section); err != nil {
				if errors.Is(err, store.ErrConflict) {
					logrus.Errorf("section (%d, %s) create conflicted; id sequence may be out of sync with manually seeded rows", dailyLog.ID, sectionType)
				}
				return err
			}
		} else if err != nil {
			return err
		}

		section.Summary = summary
		section.Mood = mood
		if err := tx.UpdateSection(ctx, section); err != nil {
			return err
		}

		sourceID := model.SectionRef(section.ID).String()
		if err := tx.DeleteLinksBySource(ctx, model.KindLogSection, sourceID); err != nil {
			return err
		}
		return tx.CreateLinks(ctx, buildLinks(sourceID, summary))
	})
	if err != nil {
		return nil, err
	}

	s.invalidateLogbook(ctx, ownerID, dailyLog.LogDate)
	s.publishAudit(ctx, &queue.AuditEvent{
		ID:       uuid.New().String(),
		Action:   queue.ActionSectionSaved,
		OwnerID:  ownerID,
		Entity:   string(model.KindLogSection),
		EntityID: model.SectionRef(section.ID).String(),
		At:       s.now(),
	})
	return section, nil
}

// buildLinks turns the parsed summary into link rows for one section.
func buildLinks(sourceID, summary string) []*model.EntityLink {
	parsed := parser.Parse(summary)
	links := make([]*model.EntityLink, 0, len(parsed))
	for _, p := range parsed {
		links = append(links, &model.EntityLink{
			SourceKind: model.KindLogSection,
			SourceID:   sourceID,
			AnchorText: p.AnchorText,
			TargetKind: p.TargetKind,
			TargetID:   p.TargetID,
		})
	}
	return links
}

// invalidateLogbook drops the cached aggregate for one day. Cache
// failures are logged, never surfaced; the store stays authoritative.
func (s *LogbookService) invalidateLogbook(ctx context.Context, ownerID, logDate string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.LogbookKey(ownerID, logDate)); err != nil {
		logrus.Warnf("failed to invalidate logbook cache for %s/%s: %v", ownerID, logDate, err)
	}
	if err := s.cache.Delete(ctx, cache.GraphKey(ownerID)); err != nil {
		logrus.Warnf("failed to invalidate keyword graph cache for %s: %v", ownerID, err)
	}
}

// publishAudit is fire-and-forget; a broker outage never blocks a save.
func (s *LogbookService) publishAudit(ctx context.Context, event *queue.AuditEvent) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Publish(ctx, event); err != nil {
		logrus.Warnf("failed to publish audit event %s: %v", event.Action, err)
	}
}
