package service

import (
	"context"
	"testing"
	"time"

	"github.com/emrgen/logbook/internal/model"
	"github.com/emrgen/logbook/internal/store"
	"github.com/emrgen/logbook/internal/tester"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func TestLogbookService_GetFullLogbook(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	service := newTestService()
	ownerID := uuid.New().String()
	date := day(2025, 9, 16)

	_, err := service.SaveSection(context.TODO(), ownerID, date, model.SectionMorning, "Went climbing.", "happy")
	assert.NoError(t, err)
	_, err = service.SaveSection(context.TODO(), ownerID, date, model.SectionEvening, "Cooked dinner.", "calm")
	assert.NoError(t, err)

	full, err := service.GetFullLogbook(context.TODO(), ownerID, date)
	assert.NoError(t, err)
	assert.Equal(t, "2025-09-16", full.LogDate)
	assert.Len(t, full.Sections, 2)
	assert.Empty(t, full.OutgoingLinks)
	assert.Empty(t, full.IncomingLinks)
}

func TestLogbookService_GetFullLogbookCreatesEmptyDay(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	service := newTestService()
	ownerID := uuid.New().String()

	full, err := service.GetFullLogbook(context.TODO(), ownerID, day(2025, 9, 16))
	assert.NoError(t, err)
	assert.NotZero(t, full.LogID)
	assert.Empty(t, full.Sections)
}

func TestLogbookService_GetHistoryDefaults(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	service := newTestService()
	service.now = func() time.Time { return day(2025, 9, 16) }
	ownerID := uuid.New().String()

	for d := 8; d <= 16; d++ {
		_, err := service.FindOrCreateDailyLog(context.TODO(), ownerID, day(2025, 9, d))
		assert.NoError(t, err)
	}

	// nil bounds cover the seven days ending today
	history, err := service.GetHistory(context.TODO(), ownerID, nil, nil, 0, 10, store.SortOrder{})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), history.Total)
	assert.Len(t, history.Items, 7)
	assert.Equal(t, "2025-09-16", history.Items[0].LogDate)
	assert.Equal(t, "2025-09-10", history.Items[6].LogDate)
}

func TestLogbookService_GetHistoryRange(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	service := newTestService()
	ownerID := uuid.New().String()

	start := day(2025, 9, 10)
	end := day(2025, 9, 16)
	_, err := service.GetHistory(context.TODO(), ownerID, &start, &end, 0, 10, store.SortOrder{})
	assert.NoError(t, err)

	tooEarly := day(2025, 9, 9)
	_, err = service.GetHistory(context.TODO(), ownerID, &tooEarly, &end, 0, 10, store.SortOrder{})
	assert.ErrorIs(t, err, ErrDateRange)

	inverted := day(2025, 9, 20)
	_, err = service.GetHistory(context.TODO(), ownerID, &inverted, &end, 0, 10, store.SortOrder{})
	assert.ErrorIs(t, err, ErrDateRange)
}

func TestLogbookService_GetHistorySortField(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	service := newTestService()
	ownerID := uuid.New().String()

	_, err := service.GetHistory(context.TODO(), ownerID, nil, nil, 0, 10, store.SortOrder{Field: "owner_id"})
	assert.ErrorIs(t, err, ErrSortField)

	_, err = service.GetHistory(context.TODO(), ownerID, nil, nil, 0, 10, store.SortOrder{Field: "log_date"})
	assert.NoError(t, err)
}

func TestLogbookService_GetHistoryPagination(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	service := newTestService()
	ownerID := uuid.New().String()

	start := day(2025, 9, 10)
	end := day(2025, 9, 16)
	for d := 10; d <= 16; d++ {
		_, err := service.FindOrCreateDailyLog(context.TODO(), ownerID, day(2025, 9, d))
		assert.NoError(t, err)
	}

	first, err := service.GetHistory(context.TODO(), ownerID, &start, &end, 0, 3, store.SortOrder{})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), first.Total)
	assert.Len(t, first.Items, 3)
	assert.Equal(t, "2025-09-16", first.Items[0].LogDate)

	third, err := service.GetHistory(context.TODO(), ownerID, &start, &end, 2, 3, store.SortOrder{})
	assert.NoError(t, err)
	assert.Len(t, third.Items, 1)
	assert.Equal(t, "2025-09-10", third.Items[0].LogDate)
}

func TestLogbookService_GetHistoryPreview(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	service := newTestService()
	ownerID := uuid.New().String()
	date := day(2025, 9, 16)

	_, err := service.SaveSection(context.TODO(), ownerID, date, model.SectionMorning, "Went climbing before work.", "happy")
	assert.NoError(t, err)
	_, err = service.SaveSection(context.TODO(), ownerID, date, model.SectionAfternoon, "Long meetings.", "")
	assert.NoError(t, err)
	_, err = service.SaveSection(context.TODO(), ownerID, date, model.SectionEvening, "Early night.", "sad")
	assert.NoError(t, err)

	start := date
	history, err := service.GetHistory(context.TODO(), ownerID, &start, &date, 0, 10, store.SortOrder{})
	assert.NoError(t, err)
	assert.Len(t, history.Items, 1)

	item := history.Items[0]
	assert.Equal(t, "Went climbing before work.", item.SummaryPreview)
	// blank moods are dropped, duplicates collapse
	assert.Equal(t, []string{"happy", "sad"}, item.Moods)
}

func TestDistinctMoods(t *testing.T) {
	moods := distinctMoods([]*model.LogSection{
		{Mood: "happy"},
		{Mood: ""},
		{Mood: "   "},
		{Mood: "happy"},
		{Mood: "sad"},
	})
	assert.Equal(t, []string{"happy", "sad"}, moods)
}

func TestLogbookService_GetHistoryPreviewSkipsBlankSummaries(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	service := newTestService()
	ownerID := uuid.New().String()
	date := day(2025, 9, 16)

	_, err := service.SaveSection(context.TODO(), ownerID, date, model.SectionMorning, "   ", "happy")
	assert.NoError(t, err)
	_, err = service.SaveSection(context.TODO(), ownerID, date, model.SectionAfternoon, "First real entry of the day.", "happy")
	assert.NoError(t, err)

	start := date
	history, err := service.GetHistory(context.TODO(), ownerID, &start, &date, 0, 10, store.SortOrder{})
	assert.NoError(t, err)
	assert.Len(t, history.Items, 1)

	item := history.Items[0]
	assert.Equal(t, "First real entry of the day.", item.SummaryPreview)
	assert.Equal(t, []string{"happy"}, item.Moods)
}
