// Package simplifiedsearch ranks in-memory items against a free-text search term.
//
// It is meant for short texts held in memory, such as autocomplete over a
// list: every call scores every item, nothing is indexed or cached.
//
//	results, err := simplifiedsearch.Search(ctx, movies, "lord of the rngs",
//		func(m Movie) string { return m.Title })
//
// Terms and fields are lowercased, stripped of diacritics and split into
// words. Items are ordered by descending relevance; items that do not
// resemble the term at all, or whose field is empty, are left out.
package simplifiedsearch

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/gcbaptista/go-simplified-search/internal/fieldbuilder"
	"github.com/gcbaptista/go-simplified-search/internal/search"
)

var (
	defaultOnce    sync.Once
	defaultService *search.Service
	defaultErr     error

	newPooledService = func() (*search.Service, error) { return search.NewService() }
)

// Default returns the shared search service built with the default pipeline.
// It is created on first use and lives for the rest of the process. When no
// worker pool can be started it scores sequentially instead.
func Default() *search.Service {
	s, _ := defaultSearchService()
	return s
}

func defaultSearchService() (*search.Service, error) {
	defaultOnce.Do(func() {
		s, err := newPooledService()
		if err != nil {
			logrus.WithError(err).Warn("falling back to sequential search service")
			s, err = search.NewSequentialService()
		}
		if err != nil {
			logrus.WithError(err).Error("failed to create default search service")
		}
		defaultService, defaultErr = s, err
	})
	return defaultService, defaultErr
}

// Search returns the items whose field, as extracted by fieldOf, resembles term.
// The most relevant item comes first; equally relevant items keep their input order.
// An error matching ErrInvalidInput is returned when items is nil, term is
// empty or fieldOf is nil.
func Search[T any](ctx context.Context, items []T, term string, fieldOf func(item T) string) ([]T, error) {
	s, err := defaultSearchService()
	if err != nil {
		return nil, err
	}
	return search.Search(ctx, s, items, term, fieldOf)
}

// SearchAll is Search with the default field builder: strings and primitives
// are searched as text, structs and maps through all their readable values.
func SearchAll[T any](ctx context.Context, items []T, term string) ([]T, error) {
	return Search(ctx, items, term, fieldbuilder.For[T]())
}

// Rank is Search returning each item together with its score.
func Rank[T any](ctx context.Context, items []T, term string, fieldOf func(item T) string) ([]search.Hit[T], error) {
	s, err := defaultSearchService()
	if err != nil {
		return nil, err
	}
	return search.Rank(ctx, s, items, term, fieldOf)
}
