package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/emrgen/logbook/internal/cache"
	"github.com/sirupsen/logrus"
)

const graphCacheTTL = time.Hour

// BuildKeywordGraph derives an owner's concept map from their link
// corpus. Every anchor text becomes a node weighted by how often it is
// used; two keywords used on the same day form an edge weighted by how
// many days they co-occur on.
func (s *LogbookService) BuildKeywordGraph(ctx context.Context, ownerID string) (*GraphData, error) {
	links, err := s.store.ListOwnerLinks(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	nodeWeights := make(map[string]int)
	nodeOrder := make([]string, 0)
	dayKeywords := make(map[int64]map[string]struct{})
	for _, link := range links {
		keyword := link.AnchorText
		if keyword == "" {
			continue
		}
		if _, seen := nodeWeights[keyword]; !seen {
			nodeOrder = append(nodeOrder, keyword)
		}
		nodeWeights[keyword]++

		day := dayKeywords[link.DailyLogID]
		if day == nil {
			day = make(map[string]struct{})
			dayKeywords[link.DailyLogID] = day
		}
		day[keyword] = struct{}{}
	}

	// repeats within a day weigh the node, not the edge
	edgeWeights := make(map[[2]string]int)
	for _, day := range dayKeywords {
		keywords := make([]string, 0, len(day))
		for keyword := range day {
			keywords = append(keywords, keyword)
		}
		sort.Strings(keywords)
		for i := 0; i < len(keywords); i++ {
			for j := i + 1; j < len(keywords); j++ {
				edgeWeights[[2]string{keywords[i], keywords[j]}]++
			}
		}
	}

	graph := &GraphData{
		Nodes: make([]GraphNode, 0, len(nodeOrder)),
		Edges: make([]GraphEdge, 0, len(edgeWeights)),
	}
	for _, keyword := range nodeOrder {
		graph.Nodes = append(graph.Nodes, GraphNode{
			ID:     keyword,
			Label:  keyword,
			Weight: nodeWeights[keyword],
		})
	}
	for pair, weight := range edgeWeights {
		graph.Edges = append(graph.Edges, GraphEdge{
			Source: pair[0],
			Target: pair[1],
			Weight: weight,
		})
	}
	sort.Slice(graph.Edges, func(i, j int) bool {
		if graph.Edges[i].Source != graph.Edges[j].Source {
			return graph.Edges[i].Source < graph.Edges[j].Source
		}
		return graph.Edges[i].Target < graph.Edges[j].Target
	})

	return graph, nil
}

// GetKeywordGraph serves the cached graph when available, rebuilding
// and caching it otherwise.
func (s *LogbookService) GetKeywordGraph(ctx context.Context, ownerID string) (*GraphData, error) {
	key := cache.GraphKey(ownerID)
	if s.cache != nil {
		data, err := s.cache.Get(ctx, key)
		if err != nil {
			logrus.Warnf("keyword graph cache get failed for %s: %v", ownerID, err)
		} else if data != nil {
			var graph GraphData
			if err := json.Unmarshal(data, &graph); err == nil {
				return &graph, nil
			}
			logrus.Warnf("keyword graph cache entry for %s is corrupt: %v", ownerID, err)
		}
	}

	graph, err := s.BuildKeywordGraph(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	s.cacheGraph(ctx, key, graph)
	return graph, nil
}

// WarmKeywordGraphs rebuilds and caches the graph of every owner that
// has any log. Per-owner failures are logged and skipped.
func (s *LogbookService) WarmKeywordGraphs(ctx context.Context) error {
	owners, err := s.store.ListLogOwners(ctx)
	if err != nil {
		return err
	}
	for _, ownerID := range owners {
		graph, err := s.BuildKeywordGraph(ctx, ownerID)
		if err != nil {
			logrus.Warnf("keyword graph warm failed for %s: %v", ownerID, err)
			continue
		}
		s.cacheGraph(ctx, cache.GraphKey(ownerID), graph)
	}
	return nil
}

func (s *LogbookService) cacheGraph(ctx context.Context, key string, graph *GraphData) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(graph)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, graphCacheTTL); err != nil {
		logrus.Warnf("keyword graph cache set failed for %s: %v", key, err)
	}
}
