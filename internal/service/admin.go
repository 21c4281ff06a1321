package service

import (
	"context"
	"time"

	"github.com/emrgen/logbook/internal/model"
	"github.com/emrgen/logbook/internal/queue"
	"github.com/emrgen/logbook/internal/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AdminService is the back-office surface over user journals. Every
// operation records an audit event carrying the operator's
// justification.
type AdminService struct {
	store store.Store
	audit queue.AuditQueue
	now   func() time.Time
}

func NewAdminService(s store.Store, audit queue.AuditQueue) *AdminService {
	return &AdminService{
		store: s,
		audit: audit,
		now:   time.Now,
	}
}

// SearchDailyLogs pages through one user's daily logs.
func (s *AdminService) SearchDailyLogs(ctx context.Context, justification, ownerID string, page, size int, sort store.SortOrder) ([]*model.DailyLog, int64, error) {
	sort, err := validateSort(sort)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.store.CountDailyLogsByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}
	logs, err := s.store.ListDailyLogsByOwner(ctx, ownerID, sort, page*size, size)
	if err != nil {
		return nil, 0, err
	}

	s.publishAudit(ctx, &queue.AuditEvent{
		ID:            uuid.New().String(),
		Action:        queue.ActionSearch,
		OwnerID:       ownerID,
		Entity:        string(model.KindDailyLog),
		Justification: justification,
		At:            s.now(),
	})
	return logs, total, nil
}

// DeleteDailyLog removes one day with its sections and their outgoing
// links, all in one transaction. Links pointing at the deleted day stay
// behind and resolve as placeholders from then on.
func (s *AdminService) DeleteDailyLog(ctx context.Context, justification string, logID int64) error {
	var ownerID string
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		dailyLog, err := tx.GetDailyLog(ctx, logID)
		if err != nil {
			return err
		}
		ownerID = dailyLog.OwnerID

		sections, err := tx.ListSections(ctx, logID)
		if err != nil {
			return err
		}
		for _, section := range sections {
			if err := tx.DeleteLinksBySource(ctx, model.KindLogSection, model.SectionRef(section.ID).String()); err != nil {
				return err
			}
		}
		if err := tx.DeleteSectionsByLog(ctx, logID); err != nil {
			return err
		}
		return tx.DeleteDailyLog(ctx, logID)
	})
	if err != nil {
		return err
	}

	s.publishAudit(ctx, &queue.AuditEvent{
		ID:            uuid.New().String(),
		Action:        queue.ActionDelete,
		OwnerID:       ownerID,
		Entity:        string(model.KindDailyLog),
		EntityID:      model.LogRef(logID).String(),
		Justification: justification,
		At:            s.now(),
	})
	return nil
}

func (s *AdminService) publishAudit(ctx context.Context, event *queue.AuditEvent) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Publish(ctx, event); err != nil {
		logrus.Warnf("failed to publish audit event %s: %v", event.Action, err)
	}
}
