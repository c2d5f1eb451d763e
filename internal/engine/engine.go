package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	searchErrors "github.com/gcbaptista/go-simplified-search/internal/errors"
	"github.com/gcbaptista/go-simplified-search/internal/search"
	"github.com/gcbaptista/go-simplified-search/model"
	"github.com/gcbaptista/go-simplified-search/services"
)

// Engine manages named in-memory collections and searches them.
// It implements the services.Engine interface. Nothing is persisted: the
// collections live as long as the Engine.
type Engine struct {
	mu          sync.RWMutex
	collections map[string]*CollectionInstance
	searcher    *search.Service
	logger      *logrus.Entry
}

// NewEngine creates a new engine that ranks documents with searcher.
func NewEngine(searcher *search.Service, logger *logrus.Entry) *Engine {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Engine{
		collections: make(map[string]*CollectionInstance),
		searcher:    searcher,
		logger:      logger.WithField("component", "engine"),
	}
}

// CreateCollection creates a new, empty collection.
func (e *Engine) CreateCollection(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.collections[name]; exists {
		return searchErrors.NewCollectionAlreadyExistsError(name)
	}

	instance, err := NewCollectionInstance(name, e.searcher, e.logger)
	if err != nil {
		return fmt.Errorf("failed to create collection instance for '%s': %w", name, err)
	}
	e.collections[name] = instance
	e.logger.WithField("collection", name).Info("collection created")
	return nil
}

// GetCollection retrieves a collection by name.
func (e *Engine) GetCollection(name string) (services.CollectionAccessor, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.collections[name]
	if !exists {
		return nil, searchErrors.NewCollectionNotFoundError(name)
	}
	return instance, nil
}

// DeleteCollection removes a collection and its documents.
func (e *Engine) DeleteCollection(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.collections[name]; !exists {
		return searchErrors.NewCollectionNotFoundError(name)
	}
	delete(e.collections, name)
	e.logger.WithField("collection", name).Info("collection deleted")
	return nil
}

// ListCollections returns the names of all collections, sorted.
func (e *Engine) ListCollections() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.collections))
	for name := range e.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SearchItems ranks documents supplied by the caller without storing them.
func (e *Engine) SearchItems(ctx context.Context, items []model.Document, query services.SearchQuery) (services.SearchResult, error) {
	return searchDocuments(ctx, e.searcher, items, query)
}

// MultiSearch executes multiple named queries concurrently.
// The first failing query cancels the others and its error is returned.
func (e *Engine) MultiSearch(ctx context.Context, multiQuery services.MultiSearchQuery) (*services.MultiSearchResult, error) {
	startTime := time.Now()

	if len(multiQuery.Queries) == 0 {
		return nil, searchErrors.NewValidationError("queries", "at least one query is required")
	}

	seen := make(map[string]bool, len(multiQuery.Queries))
	for _, namedQuery := range multiQuery.Queries {
		if namedQuery.Name == "" {
			return nil, searchErrors.NewValidationError("name", "each query must have a non-empty name")
		}
		if seen[namedQuery.Name] {
			return nil, searchErrors.NewValidationError("name", fmt.Sprintf("duplicate query name '%s'", namedQuery.Name))
		}
		seen[namedQuery.Name] = true
	}

	var mu sync.Mutex
	results := make(map[string]services.SearchResult, len(multiQuery.Queries))

	g, gctx := errgroup.WithContext(ctx)
	for _, namedQuery := range multiQuery.Queries {
		g.Go(func() error {
			collection, err := e.GetCollection(namedQuery.Collection)
			if err != nil {
				return fmt.Errorf("error executing query '%s': %w", namedQuery.Name, err)
			}

			result, err := collection.Search(gctx, services.SearchQuery{
				Query:  namedQuery.Query,
				Fields: namedQuery.Fields,
				Limit:  namedQuery.Limit,
			})
			if err != nil {
				return fmt.Errorf("error executing query '%s': %w", namedQuery.Name, err)
			}

			mu.Lock()
			results[namedQuery.Name] = result
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &services.MultiSearchResult{
		Results:          results,
		TotalQueries:     len(multiQuery.Queries),
		ProcessingTimeMs: float64(time.Since(startTime).Nanoseconds()) / 1e6,
	}, nil
}
