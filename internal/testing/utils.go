// Package testing provides utilities and helpers for testing the search service.
package testing

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-simplified-search/internal/engine"
	"github.com/gcbaptista/go-simplified-search/internal/search"
	"github.com/gcbaptista/go-simplified-search/model"
	"github.com/gcbaptista/go-simplified-search/services"
)

// QuietLogger returns a logger that only reports warnings and errors.
func QuietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logrus.NewEntry(logger)
}

// CreateTestSearcher creates a search service whose pool is released when the test ends.
func CreateTestSearcher(t *testing.T, opts ...search.Option) *search.Service {
	t.Helper()
	opts = append([]search.Option{search.WithPoolSize(2), search.WithLogger(QuietLogger())}, opts...)
	searcher, err := search.NewService(opts...)
	require.NoError(t, err, "Failed to create search service")
	t.Cleanup(searcher.Release)
	return searcher
}

// CreateTestEngine creates a new engine instance for testing with automatic cleanup
func CreateTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.NewEngine(CreateTestSearcher(t), QuietLogger())
}

// CreateTestCollection creates a collection and fills it with SampleDocuments
func CreateTestCollection(t *testing.T, eng *engine.Engine, name string) []model.Document {
	t.Helper()
	require.NoError(t, eng.CreateCollection(name), "Failed to create test collection")

	accessor, err := eng.GetCollection(name)
	require.NoError(t, err, "Failed to get collection accessor")

	docs := SampleDocuments()
	accessor.AddDocuments(docs)
	return docs
}

// SampleDocuments returns a small set of movie documents
func SampleDocuments() []model.Document {
	return []model.Document{
		{
			"documentID":  "doc1",
			"title":       "The Matrix",
			"content":     "A computer programmer discovers reality is a simulation",
			"description": "Sci-fi action movie about virtual reality",
			"category":    "movie",
			"year":        1999,
		},
		{
			"documentID":  "doc2",
			"title":       "Inception",
			"content":     "A thief enters people's dreams to steal secrets",
			"description": "Mind-bending thriller about dream manipulation",
			"category":    "movie",
			"year":        2010,
		},
		{
			"documentID":  "doc3",
			"title":       "Interstellar",
			"content":     "Astronauts travel through a wormhole to save humanity",
			"description": "Space epic about time dilation and love",
			"category":    "movie",
			"year":        2014,
		},
	}
}

// SearchTestCase represents a test case for search operations
type SearchTestCase struct {
	Name          string
	Query         services.SearchQuery
	ExpectedCount int
	ExpectedFirst string // Expected first result document ID
	ValidateFunc  func(t *testing.T, results *services.SearchResult)
}

// RunSearchTests runs a suite of search tests against a collection
func RunSearchTests(t *testing.T, searcher services.Searcher, tests []SearchTestCase) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			results, err := searcher.Search(context.Background(), tt.Query)
			require.NoError(t, err, "Search should not fail")

			assert.Equal(t, tt.ExpectedCount, results.Total, "Result count should match")

			if tt.ExpectedFirst != "" && assert.NotEmpty(t, results.Hits, "Expected at least one hit") {
				firstDocID, exists := results.Hits[0].Document.GetDocumentID()
				require.True(t, exists, "First result should have document ID")
				assert.Equal(t, tt.ExpectedFirst, firstDocID, "First result should match expected")
			}

			if tt.ValidateFunc != nil {
				tt.ValidateFunc(t, &results)
			}
		})
	}
}
