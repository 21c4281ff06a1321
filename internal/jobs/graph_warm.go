package jobs

import (
	"context"

	"github.com/emrgen/logbook/internal/service"
	"github.com/sirupsen/logrus"
)

// GraphWarmTask periodically rebuilds every owner's keyword graph into
// the cache so the first read of the day does not pay for the build.
type GraphWarmTask struct {
	logbook *service.LogbookService
	cron    string
}

func NewGraphWarmTask(schedule string, logbook *service.LogbookService) *GraphWarmTask {
	return &GraphWarmTask{
		logbook: logbook,
		cron:    schedule,
	}
}

func (g *GraphWarmTask) ID() string {
	return "graph_warm"
}

func (g *GraphWarmTask) Name() string {
	return "graph_warm"
}

func (g *GraphWarmTask) Schedule() string {
	return g.cron
}

func (g *GraphWarmTask) Run() {
	if err := g.logbook.WarmKeywordGraphs(context.Background()); err != nil {
		logrus.Errorf("keyword graph warm run failed: %v", err)
	}
}
