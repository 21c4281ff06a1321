package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/emrgen/logbook/internal/cache"
	"github.com/emrgen/logbook/internal/model"
	"github.com/emrgen/logbook/internal/store"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// historyMaxDays caps a history query, end date inclusive.
	historyMaxDays = 7

	logbookCacheTTL = 10 * time.Minute

	// resolveConcurrency bounds per-link preview resolution.
	resolveConcurrency = 8
)

// GetFullLogbook assembles one owner-day: sections, outgoing links and
// incoming backlinks, previews resolved. The three legs load
// concurrently; link resolution inside each leg is bounded fan-out with
// document order preserved.
func (s *LogbookService) GetFullLogbook(ctx context.Context, ownerID string, date time.Time) (*FullLogbook, error) {
	key := cache.LogbookKey(ownerID, model.FormatDate(date))
	if cached := s.cachedLogbook(ctx, key); cached != nil {
		return cached, nil
	}

	dailyLog, err := s.FindOrCreateDailyLog(ctx, ownerID, date)
	if err != nil {
		return nil, err
	}

	full := &FullLogbook{
		LogID:   dailyLog.ID,
		LogDate: dailyLog.LogDate,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sections, err := s.store.ListSections(gctx, dailyLog.ID)
		if err != nil {
			return err
		}
		full.Sections = make([]SectionView, 0, len(sections))
		for _, section := range sections {
			full.Sections = append(full.Sections, SectionView{
				SectionType: section.SectionType,
				Summary:     section.Summary,
				Mood:        section.Mood,
			})
		}
		return nil
	})
	g.Go(func() error {
		links, err := s.outgoingLinks(gctx, dailyLog.ID)
		if err != nil {
			return err
		}
		full.OutgoingLinks = s.resolveAll(gctx, links, s.resolver.ResolveOutgoing)
		return nil
	})
	g.Go(func() error {
		links, err := s.store.ListLinksByTarget(gctx, model.KindDailyLog, model.LogRef(dailyLog.ID).String())
		if err != nil {
			return err
		}
		full.IncomingLinks = s.resolveAll(gctx, links, s.resolver.ResolveIncoming)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.cacheLogbook(ctx, key, full)
	return full, nil
}

// GetHistory returns one page of the owner's days in [start, end], each
// reduced to a summary preview and its distinct moods. A nil end
// defaults to today, a nil start to six days before end; the inclusive
// range may cover at most seven days.
func (s *LogbookService) GetHistory(ctx context.Context, ownerID string, start, end *time.Time, page, size int, sort store.SortOrder) (*HistoryPage, error) {
	sort, err := validateSort(sort)
	if err != nil {
		return nil, err
	}

	endDay := s.now()
	if end != nil {
		endDay = *end
	}
	startDay := endDay.AddDate(0, 0, -(historyMaxDays - 1))
	if start != nil {
		startDay = *start
	}

	startDate := model.FormatDate(startDay)
	endDate := model.FormatDate(endDay)
	if err := checkHistoryRange(startDate, endDate); err != nil {
		return nil, err
	}

	total, err := s.store.CountDailyLogs(ctx, ownerID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	logs, err := s.store.ListDailyLogs(ctx, ownerID, startDate, endDate, sort, page*size, size)
	if err != nil {
		return nil, err
	}

	items, err := s.previewLogs(ctx, logs)
	if err != nil {
		return nil, err
	}

	return &HistoryPage{
		Items: items,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

// previewLogs reduces each day to its preview, loading all sections of
// the page in one query.
func (s *LogbookService) previewLogs(ctx context.Context, logs []*model.DailyLog) ([]*LogbookPreview, error) {
	ids := make([]int64, 0, len(logs))
	for _, dailyLog := range logs {
		ids = append(ids, dailyLog.ID)
	}

	sections, err := s.store.ListSectionsByLogIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byLog := make(map[int64][]*model.LogSection, len(logs))
	for _, section := range sections {
		byLog[section.DailyLogID] = append(byLog[section.DailyLogID], section)
	}

	items := make([]*LogbookPreview, 0, len(logs))
	for _, dailyLog := range logs {
		daySections := byLog[dailyLog.ID]
		summaries := make([]string, 0, len(daySections))
		for _, section := range daySections {
			summaries = append(summaries, section.Summary)
		}
		items = append(items, &LogbookPreview{
			LogID:          dailyLog.ID,
			LogDate:        dailyLog.LogDate,
			SummaryPreview: summaryPreview(firstNonBlank(summaries)),
			Moods:          distinctMoods(daySections),
		})
	}
	return items, nil
}

// distinctMoods keeps the first occurrence of each non-blank mood, in
// section order.
func distinctMoods(sections []*model.LogSection) []string {
	moods := make([]string, 0, len(sections))
	seen := make(map[string]bool, len(sections))
	for _, section := range sections {
		if strings.TrimSpace(section.Mood) == "" || seen[section.Mood] {
			continue
		}
		seen[section.Mood] = true
		moods = append(moods, section.Mood)
	}
	return moods
}

// checkHistoryRange rejects an inverted range or one spanning more than
// seven inclusive days.
func checkHistoryRange(startDate, endDate string) error {
	start, err := time.Parse(model.DateLayout, startDate)
	if err != nil {
		return err
	}
	end, err := time.Parse(model.DateLayout, endDate)
	if err != nil {
		return err
	}
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 || days > historyMaxDays-1 {
		return ErrDateRange
	}
	return nil
}

// outgoingLinks collects the links of every section of one day.
func (s *LogbookService) outgoingLinks(ctx context.Context, dailyLogID int64) ([]*model.EntityLink, error) {
	sections, err := s.store.ListSections(ctx, dailyLogID)
	if err != nil {
		return nil, err
	}
	sourceIDs := make([]string, 0, len(sections))
	for _, section := range sections {
		sourceIDs = append(sourceIDs, model.SectionRef(section.ID).String())
	}
	return s.store.ListLinksBySources(ctx, model.KindLogSection, sourceIDs)
}

// resolveAll fans link resolution out with bounded concurrency, writing
// each preview to its link's slot so order survives.
func (s *LogbookService) resolveAll(ctx context.Context, links []*model.EntityLink, resolve func(ctx context.Context, link *model.EntityLink) *LinkPreview) []LinkPreview {
	previews := make([]LinkPreview, len(links))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for i, link := range links {
		i, link := i, link // per-iteration copies; required while building with Go < 1.22
		g.Go(func() error {
			previews[i] = *resolve(gctx, link)
			return nil
		})
	}
	// resolvers degrade to placeholders instead of erroring
	_ = g.Wait()

	return previews
}

func (s *LogbookService) cachedLogbook(ctx context.Context, key string) *FullLogbook {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		logrus.Warnf("logbook cache get failed for %s: %v", key, err)
		return nil
	}
	if data == nil {
		return nil
	}
	var full FullLogbook
	if err := json.Unmarshal(data, &full); err != nil {
		logrus.Warnf("logbook cache entry %s is corrupt: %v", key, err)
		return nil
	}
	return &full
}

func (s *LogbookService) cacheLogbook(ctx context.Context, key string, full *FullLogbook) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(full)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, logbookCacheTTL); err != nil {
		logrus.Warnf("logbook cache set failed for %s: %v", key, err)
	}
}
