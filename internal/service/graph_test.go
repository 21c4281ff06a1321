package service

import (
	"context"
	"testing"

	"github.com/emrgen/logbook/internal/model"
	"github.com/emrgen/logbook/internal/tester"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLogbookService_BuildKeywordGraph(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	service := newTestService()
	ownerID := uuid.New().String()
	gymID := uuid.New().String()

	// day one mentions gym and sleep, day two gym and diet
	_, err := service.SaveSection(context.TODO(), ownerID, day(2025, 9, 15), model.SectionMorning,
		"Hit [the gym](person:"+gymID+") then tracked [sleep](log:41).", "")
	assert.NoError(t, err)
	_, err = service.SaveSection(context.TODO(), ownerID, day(2025, 9, 16), model.SectionMorning,
		"Back to [the gym](person:"+gymID+"), started [a diet](log:42).", "")
	assert.NoError(t, err)

	graph, err := service.BuildKeywordGraph(context.TODO(), ownerID)
	assert.NoError(t, err)

	assert.Equal(t, []GraphNode{
		{ID: "the gym", Label: "the gym", Weight: 2},
		{ID: "sleep", Label: "sleep", Weight: 1},
		{ID: "a diet", Label: "a diet", Weight: 1},
	}, graph.Nodes)

	assert.Equal(t, []GraphEdge{
		{Source: "a diet", Target: "the gym", Weight: 1},
		{Source: "sleep", Target: "the gym", Weight: 1},
	}, graph.Edges)
}

func TestLogbookService_BuildKeywordGraphRepeatsWithinDay(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	service := newTestService()
	ownerID := uuid.New().String()

	// the same keyword twice on one day weighs the node, not an edge
	_, err := service.SaveSection(context.TODO(), ownerID, day(2025, 9, 16), model.SectionMorning,
		"Morning [run](log:41).", "")
	assert.NoError(t, err)
	_, err = service.SaveSection(context.TODO(), ownerID, day(2025, 9, 16), model.SectionEvening,
		"Evening [run](log:41) again.", "")
	assert.NoError(t, err)

	graph, err := service.BuildKeywordGraph(context.TODO(), ownerID)
	assert.NoError(t, err)

	assert.Equal(t, []GraphNode{{ID: "run", Label: "run", Weight: 2}}, graph.Nodes)
	assert.Empty(t, graph.Edges)
}

func TestLogbookService_BuildKeywordGraphScopedToOwner(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	service := newTestService()
	ownerID := uuid.New().String()
	otherID := uuid.New().String()

	_, err := service.SaveSection(context.TODO(), ownerID, day(2025, 9, 16), model.SectionMorning,
		"Tracked [sleep](log:41).", "")
	assert.NoError(t, err)
	_, err = service.SaveSection(context.TODO(), otherID, day(2025, 9, 16), model.SectionMorning,
		"Tracked [diet](log:42).", "")
	assert.NoError(t, err)

	graph, err := service.BuildKeywordGraph(context.TODO(), ownerID)
	assert.NoError(t, err)
	assert.Equal(t, []GraphNode{{ID: "sleep", Label: "sleep", Weight: 1}}, graph.Nodes)
}

func TestLogbookService_BuildKeywordGraphEmpty(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	service := newTestService()

	graph, err := service.BuildKeywordGraph(context.TODO(), uuid.New().String())
	assert.NoError(t, err)
	assert.Empty(t, graph.Nodes)
	assert.Empty(t, graph.Edges)
}
