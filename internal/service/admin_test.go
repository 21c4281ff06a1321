package service

import (
	"context"
	"testing"

	"github.com/emrgen/logbook/internal/model"
	"github.com/emrgen/logbook/internal/queue"
	"github.com/emrgen/logbook/internal/store"
	"github.com/emrgen/logbook/internal/tester"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAdminService_SearchDailyLogs(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	service := newTestService()
	admin := NewAdminService(service.store, queue.NewNoop())
	ownerID := uuid.New().String()

	for d := 10; d <= 14; d++ {
		_, err := service.FindOrCreateDailyLog(context.TODO(), ownerID, day(2025, 9, d))
		assert.NoError(t, err)
	}

	logs, total, err := admin.SearchDailyLogs(context.TODO(), "support ticket 1234", ownerID, 0, 3, store.SortOrder{})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, logs, 3)
	assert.Equal(t, "2025-09-14", logs[0].LogDate)

	_, _, err = admin.SearchDailyLogs(context.TODO(), "support ticket 1234", ownerID, 0, 3, store.SortOrder{Field: "created_at"})
	assert.ErrorIs(t, err, ErrSortField)
}

func TestAdminService_DeleteDailyLog(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	service := newTestService()
	admin := NewAdminService(service.store, queue.NewNoop())
	ownerID := uuid.New().String()
	date := day(2025, 9, 16)

	section, err := service.SaveSection(context.TODO(), ownerID, date, model.SectionMorning,
		"Met [Alice](person:"+uuid.New().String()+").", "happy")
	assert.NoError(t, err)

	err = admin.DeleteDailyLog(context.TODO(), "user data removal request", section.DailyLogID)
	assert.NoError(t, err)

	_, err = service.store.GetDailyLog(context.TODO(), section.DailyLogID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = service.store.GetSection(context.TODO(), section.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	links, err := service.store.ListLinksBySources(context.TODO(), model.KindLogSection,
		[]string{model.SectionRef(section.ID).String()})
	assert.NoError(t, err)
	assert.Empty(t, links)
}

func TestAdminService_DeleteDailyLogMissing(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	admin := NewAdminService(store.NewGormStore(tester.TestDB()), queue.NewNoop())

	err := admin.DeleteDailyLog(context.TODO(), "cleanup", 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
