package store

import (
	"sync"

	"github.com/gcbaptista/go-simplified-search/model"
)

// DocumentStore keeps the documents of a collection in insertion order.
// Search results for equally relevant documents follow this order.
type DocumentStore struct {
	mu   sync.RWMutex
	docs []model.Document
}

// NewDocumentStore creates an empty DocumentStore.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make([]model.Document, 0)}
}

// Add appends documents. A document whose documentID is already stored replaces
// the stored one in place, keeping its position.
func (ds *DocumentStore) Add(docs []model.Document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	positions := make(map[string]int, len(ds.docs))
	for i, doc := range ds.docs {
		if id, ok := doc.GetDocumentID(); ok {
			positions[id] = i
		}
	}

	for _, doc := range docs {
		if id, ok := doc.GetDocumentID(); ok {
			if pos, exists := positions[id]; exists {
				ds.docs[pos] = doc
				continue
			}
			positions[id] = len(ds.docs)
		}
		ds.docs = append(ds.docs, doc)
	}
}

// Replace swaps the stored documents for docs.
func (ds *DocumentStore) Replace(docs []model.Document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.docs = make([]model.Document, len(docs))
	copy(ds.docs, docs)
}

// Get returns the document stored under documentID.
func (ds *DocumentStore) Get(documentID string) (model.Document, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	for _, doc := range ds.docs {
		if id, ok := doc.GetDocumentID(); ok && id == documentID {
			return doc, true
		}
	}
	return nil, false
}

// Delete removes the document stored under documentID and reports whether it existed.
func (ds *DocumentStore) Delete(documentID string) bool {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	for i, doc := range ds.docs {
		if id, ok := doc.GetDocumentID(); ok && id == documentID {
			ds.docs = append(ds.docs[:i], ds.docs[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every document.
func (ds *DocumentStore) Clear() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs = make([]model.Document, 0)
}

// All returns a snapshot of the stored documents.
// The returned slice is never nil, so it can be searched directly.
func (ds *DocumentStore) All() []model.Document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	docs := make([]model.Document, len(ds.docs))
	copy(docs, ds.docs)
	return docs
}

// Count returns the number of stored documents.
func (ds *DocumentStore) Count() int {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return len(ds.docs)
}
