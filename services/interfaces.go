package services

import (
	"context"

	"github.com/gcbaptista/go-simplified-search/model"
)

// HitResult represents a single document in the search results.
type HitResult struct {
	Document model.Document `json:"document"`
	Score    float64        `json:"score"` // Similarity score, always greater than zero
}

type SearchResult struct {
	Hits    []HitResult `json:"hits"`
	Total   int         `json:"total"`    // Number of matching documents before Limit is applied
	Took    int64       `json:"took"`     // milliseconds
	QueryId string      `json:"query_id"` // unique UUID for this search query
}

type SearchQuery struct {
	Query  string   `json:"query"`
	Fields []string `json:"fields,omitempty"` // Optional: document fields to search; all fields when empty
	Limit  int      `json:"limit,omitempty"`  // Optional: maximum number of hits returned; unlimited when zero
}

// MultiSearchQuery represents a request to execute multiple named search queries
type MultiSearchQuery struct {
	Queries []NamedSearchQuery `json:"queries"`
}

// NamedSearchQuery represents a single named search query within a multi-search request
type NamedSearchQuery struct {
	Name       string   `json:"name"`
	Collection string   `json:"collection"`
	Query      string   `json:"query"`
	Fields     []string `json:"fields,omitempty"`
	Limit      int      `json:"limit,omitempty"`
}

// MultiSearchResult represents the response from a multi-search operation
type MultiSearchResult struct {
	Results          map[string]SearchResult `json:"results"`
	TotalQueries     int                     `json:"total_queries"`
	ProcessingTimeMs float64                 `json:"processing_time_ms"`
}

// DocumentWriter defines operations for changing the documents of a collection
type DocumentWriter interface {
	AddDocuments(docs []model.Document)
	ReplaceDocuments(docs []model.Document)
	DeleteAllDocuments()
	DeleteDocument(docID string) error
}

// Searcher defines operations for querying a collection
type Searcher interface {
	Search(ctx context.Context, query SearchQuery) (SearchResult, error)
}

// CollectionAccessor gives access to a single named collection
type CollectionAccessor interface {
	DocumentWriter
	Searcher
	Name() string
	Documents() []model.Document
	GetDocument(docID string) (model.Document, error)
	DocumentCount() int
}

// CollectionManager manages the lifecycle of collections
type CollectionManager interface {
	CreateCollection(name string) error
	GetCollection(name string) (CollectionAccessor, error)
	DeleteCollection(name string) error
	ListCollections() []string
}

// ItemSearcher searches documents supplied with the request rather than stored in a collection
type ItemSearcher interface {
	SearchItems(ctx context.Context, items []model.Document, query SearchQuery) (SearchResult, error)
}

// MultiSearcher defines operations for performing multiple queries in a single request
type MultiSearcher interface {
	MultiSearch(ctx context.Context, query MultiSearchQuery) (*MultiSearchResult, error)
}

// Engine combines every operation exposed by the HTTP API
type Engine interface {
	CollectionManager
	ItemSearcher
	MultiSearcher
}
