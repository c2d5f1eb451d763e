package analytics

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gcbaptista/go-simplified-search/model"
	"github.com/gcbaptista/go-simplified-search/services"
)

const (
	maxEventsToKeep     = 10000 // Keep last 10k events for performance
	maxPopularSearches  = 10
	adHocCollectionName = "_items"
)

// Service tracks search events in memory and aggregates them for the dashboard.
type Service struct {
	mutex             sync.RWMutex
	events            []model.SearchEvent
	collectionManager services.CollectionManager
}

// NewService creates a new analytics service
func NewService(collectionManager services.CollectionManager) *Service {
	return &Service{
		events:            make([]model.SearchEvent, 0),
		collectionManager: collectionManager,
	}
}

// TrackSearchEvent records a new search event
func (s *Service) TrackSearchEvent(event model.SearchEvent) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
}

// EventCount returns the number of retained events
func (s *Service) EventCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.events)
}

// GetDashboardData returns the aggregated analytics
func (s *Service) GetDashboardData() model.AnalyticsDashboard {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	dashboard := model.AnalyticsDashboard{
		TotalSearches:            len(s.events),
		ZeroResultSearches:       s.countZeroResultSearches(),
		AvgResponseTimeMs:        s.calculateAvgResponseTime(),
		PopularSearches:          s.getPopularSearches(),
		CollectionUsage:          s.getCollectionUsage(),
		ResponseTimeDistribution: s.getResponseTimeDistribution(),
	}

	if s.collectionManager != nil {
		names := s.collectionManager.ListCollections()
		dashboard.ActiveCollections = len(names)
		for _, name := range names {
			if collection, err := s.collectionManager.GetCollection(name); err == nil {
				dashboard.TotalDocuments += collection.DocumentCount()
			}
		}
	}

	return dashboard
}

func (s *Service) countZeroResultSearches() int {
	count := 0
	for _, event := range s.events {
		if event.ResultCount == 0 {
			count++
		}
	}
	return count
}

// calculateAvgResponseTime calculates average response time in milliseconds
func (s *Service) calculateAvgResponseTime() float64 {
	if len(s.events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range s.events {
		total += event.ResponseTime
	}
	return float64(total.Microseconds()) / float64(len(s.events)) / 1000
}

// getPopularSearches returns the most frequent queries, case-insensitively
func (s *Service) getPopularSearches() []model.PopularSearch {
	counts := make(map[string]int)
	for _, event := range s.events {
		query := strings.ToLower(strings.TrimSpace(event.Query))
		if query != "" {
			counts[query]++
		}
	}

	popular := make([]model.PopularSearch, 0, len(counts))
	for query, count := range counts {
		popular = append(popular, model.PopularSearch{Query: query, SearchCount: count})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].SearchCount != popular[j].SearchCount {
			return popular[i].SearchCount > popular[j].SearchCount
		}
		return popular[i].Query < popular[j].Query
	})

	if len(popular) > maxPopularSearches {
		popular = popular[:maxPopularSearches]
	}
	return popular
}

// getCollectionUsage returns search counts per collection, ad-hoc searches grouped under "_items"
func (s *Service) getCollectionUsage() []model.CollectionStats {
	counts := make(map[string]int)
	for _, event := range s.events {
		name := event.Collection
		if name == "" {
			name = adHocCollectionName
		}
		counts[name]++
	}

	usage := make([]model.CollectionStats, 0, len(counts))
	for name, count := range counts {
		stats := model.CollectionStats{Collection: name, SearchCount: count}
		if s.collectionManager != nil && name != adHocCollectionName {
			if collection, err := s.collectionManager.GetCollection(name); err == nil {
				stats.DocumentCount = collection.DocumentCount()
			}
		}
		usage = append(usage, stats)
	}
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].SearchCount != usage[j].SearchCount {
			return usage[i].SearchCount > usage[j].SearchCount
		}
		return usage[i].Collection < usage[j].Collection
	})
	return usage
}

func (s *Service) getResponseTimeDistribution() model.ResponseTimeDistribution {
	var dist model.ResponseTimeDistribution
	for _, event := range s.events {
		switch {
		case event.ResponseTime < time.Millisecond:
			dist.Bucket0To1ms++
		case event.ResponseTime < 10*time.Millisecond:
			dist.Bucket1To10ms++
		case event.ResponseTime < 100*time.Millisecond:
			dist.Bucket10To100ms++
		default:
			dist.Bucket100msPlus++
		}
	}
	return dist
}
