package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	searchErrors "github.com/gcbaptista/go-simplified-search/internal/errors"
	"github.com/gcbaptista/go-simplified-search/model"
	"github.com/gcbaptista/go-simplified-search/services"
)

// MockCollectionManager is a simple mock for testing
type MockCollectionManager struct {
	counts map[string]int
}

type mockCollection struct {
	services.CollectionAccessor
	count int
}

func (m mockCollection) DocumentCount() int { return m.count }

func (m *MockCollectionManager) CreateCollection(_ string) error { return nil }
func (m *MockCollectionManager) DeleteCollection(_ string) error { return nil }
func (m *MockCollectionManager) GetCollection(name string) (services.CollectionAccessor, error) {
	count, ok := m.counts[name]
	if !ok {
		return nil, searchErrors.NewCollectionNotFoundError(name)
	}
	return mockCollection{count: count}, nil
}
func (m *MockCollectionManager) ListCollections() []string {
	names := make([]string, 0, len(m.counts))
	for name := range m.counts {
		names = append(names, name)
	}
	return names
}

func TestAnalyticsService_TrackSearchEvent(t *testing.T) {
	service := NewService(nil)

	service.TrackSearchEvent(model.SearchEvent{
		Collection:   "movies",
		Query:        "matrix",
		ResponseTime: 2 * time.Millisecond,
		ResultCount:  2,
	})

	require.Equal(t, 1, service.EventCount())
	assert.False(t, service.events[0].Timestamp.IsZero())
}

func TestAnalyticsService_EventsAreBounded(t *testing.T) {
	service := NewService(nil)
	for i := 0; i < maxEventsToKeep+5; i++ {
		service.TrackSearchEvent(model.SearchEvent{Query: "q"})
	}
	assert.Equal(t, maxEventsToKeep, service.EventCount())
}

func TestAnalyticsService_GetDashboardData(t *testing.T) {
	manager := &MockCollectionManager{counts: map[string]int{"movies": 4, "books": 10}}
	service := NewService(manager)

	events := []model.SearchEvent{
		{Collection: "movies", Query: "Matrix", ResponseTime: 500 * time.Microsecond, ResultCount: 2},
		{Collection: "movies", Query: "matrix ", ResponseTime: 5 * time.Millisecond, ResultCount: 2},
		{Collection: "books", Query: "dune", ResponseTime: 50 * time.Millisecond, ResultCount: 0},
		{Query: "cat", ResponseTime: 200 * time.Millisecond, ResultCount: 1},
	}
	for _, event := range events {
		service.TrackSearchEvent(event)
	}

	dashboard := service.GetDashboardData()

	assert.Equal(t, 4, dashboard.TotalSearches)
	assert.Equal(t, 1, dashboard.ZeroResultSearches)
	assert.InDelta(t, 63.875, dashboard.AvgResponseTimeMs, 0.001)
	assert.Equal(t, 2, dashboard.ActiveCollections)
	assert.Equal(t, 14, dashboard.TotalDocuments)

	require.NotEmpty(t, dashboard.PopularSearches)
	assert.Equal(t, model.PopularSearch{Query: "matrix", SearchCount: 2}, dashboard.PopularSearches[0])

	require.Len(t, dashboard.CollectionUsage, 3)
	assert.Equal(t, model.CollectionStats{Collection: "movies", DocumentCount: 4, SearchCount: 2}, dashboard.CollectionUsage[0])
	assert.Equal(t, "_items", dashboard.CollectionUsage[1].Collection)
	assert.Equal(t, model.CollectionStats{Collection: "books", DocumentCount: 10, SearchCount: 1}, dashboard.CollectionUsage[2])

	assert.Equal(t, model.ResponseTimeDistribution{
		Bucket0To1ms:    1,
		Bucket1To10ms:   1,
		Bucket10To100ms: 1,
		Bucket100msPlus: 1,
	}, dashboard.ResponseTimeDistribution)
}

func TestAnalyticsService_EmptyDashboard(t *testing.T) {
	dashboard := NewService(nil).GetDashboardData()

	assert.Equal(t, 0, dashboard.TotalSearches)
	assert.Equal(t, 0.0, dashboard.AvgResponseTimeMs)
	assert.Empty(t, dashboard.PopularSearches)
	assert.Empty(t, dashboard.CollectionUsage)
}
