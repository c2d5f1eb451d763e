package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	searchErrors "github.com/gcbaptista/go-simplified-search/internal/errors"
	"github.com/gcbaptista/go-simplified-search/internal/search"
	"github.com/gcbaptista/go-simplified-search/model"
	"github.com/gcbaptista/go-simplified-search/services"
	"github.com/gcbaptista/go-simplified-search/store"
)

// CollectionInstance holds the documents of a single named collection.
// It implements the services.CollectionAccessor interface.
type CollectionInstance struct {
	name     string
	store    *store.DocumentStore
	searcher *search.Service
	logger   *logrus.Entry
}

// NewCollectionInstance creates an empty collection searched by searcher.
func NewCollectionInstance(name string, searcher *search.Service, logger *logrus.Entry) (*CollectionInstance, error) {
	if name == "" {
		return nil, searchErrors.NewValidationError("name", "collection name cannot be empty")
	}
	if searcher == nil {
		return nil, searchErrors.NewValidationError("searcher", "search service cannot be nil")
	}
	return &CollectionInstance{
		name:     name,
		store:    store.NewDocumentStore(),
		searcher: searcher,
		logger:   logger.WithField("collection", name),
	}, nil
}

// Name returns the collection name.
func (c *CollectionInstance) Name() string {
	return c.name
}

// AddDocuments appends documents, replacing stored ones with the same documentID.
func (c *CollectionInstance) AddDocuments(docs []model.Document) {
	c.store.Add(docs)
	c.logger.WithField("count", len(docs)).Debug("documents added")
}

// ReplaceDocuments swaps all documents of the collection.
func (c *CollectionInstance) ReplaceDocuments(docs []model.Document) {
	c.store.Replace(docs)
	c.logger.WithField("count", len(docs)).Debug("documents replaced")
}

// DeleteAllDocuments empties the collection.
func (c *CollectionInstance) DeleteAllDocuments() {
	c.store.Clear()
}

// DeleteDocument removes a single document by its documentID.
func (c *CollectionInstance) DeleteDocument(docID string) error {
	if !c.store.Delete(docID) {
		return searchErrors.NewDocumentNotFoundError(docID, c.name)
	}
	return nil
}

// GetDocument returns a single document by its documentID.
func (c *CollectionInstance) GetDocument(docID string) (model.Document, error) {
	doc, ok := c.store.Get(docID)
	if !ok {
		return nil, searchErrors.NewDocumentNotFoundError(docID, c.name)
	}
	return doc, nil
}

// Documents returns a snapshot of the stored documents.
func (c *CollectionInstance) Documents() []model.Document {
	return c.store.All()
}

// DocumentCount returns the number of stored documents.
func (c *CollectionInstance) DocumentCount() int {
	return c.store.Count()
}

// Search ranks the collection's documents against the query.
func (c *CollectionInstance) Search(ctx context.Context, query services.SearchQuery) (services.SearchResult, error) {
	return searchDocuments(ctx, c.searcher, c.store.All(), query)
}

// searchDocuments ranks docs and converts the hits to a services.SearchResult.
func searchDocuments(ctx context.Context, searcher *search.Service, docs []model.Document, query services.SearchQuery) (services.SearchResult, error) {
	startTime := time.Now()

	if query.Limit < 0 {
		return services.SearchResult{}, searchErrors.NewValidationError("limit", "must not be negative")
	}

	hits, err := search.Rank(ctx, searcher, docs, query.Query, model.FieldSelector(query.Fields))
	if err != nil {
		return services.SearchResult{}, err
	}

	total := len(hits)
	if query.Limit > 0 && len(hits) > query.Limit {
		hits = hits[:query.Limit]
	}

	results := make([]services.HitResult, len(hits))
	for i, hit := range hits {
		results[i] = services.HitResult{Document: hit.Item, Score: hit.Score}
	}

	return services.SearchResult{
		Hits:    results,
		Total:   total,
		Took:    time.Since(startTime).Milliseconds(),
		QueryId: uuid.New().String(),
	}, nil
}
