package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-simplified-search/model"
)

func TestDocumentStore_AddKeepsOrderAndReplacesByID(t *testing.T) {
	ds := NewDocumentStore()
	ds.Add([]model.Document{
		{"documentID": "a", "title": "Alien"},
		{"title": "no id"},
		{"documentID": "b", "title": "Blade Runner"},
	})
	ds.Add([]model.Document{
		{"documentID": "a", "title": "Aliens"},
		{"documentID": "c", "title": "Contact"},
	})

	docs := ds.All()
	require.Len(t, docs, 4)
	assert.Equal(t, "Aliens", docs[0]["title"])
	assert.Equal(t, "no id", docs[1]["title"])
	assert.Equal(t, "Blade Runner", docs[2]["title"])
	assert.Equal(t, "Contact", docs[3]["title"])
}

func TestDocumentStore_GetDeleteClear(t *testing.T) {
	ds := NewDocumentStore()
	ds.Replace([]model.Document{{"documentID": "a"}, {"documentID": "b"}})

	doc, ok := ds.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "b", doc["documentID"])

	assert.True(t, ds.Delete("a"))
	assert.False(t, ds.Delete("a"))
	assert.Equal(t, 1, ds.Count())

	_, ok = ds.Get("a")
	assert.False(t, ok)

	ds.Clear()
	assert.Equal(t, 0, ds.Count())
	assert.NotNil(t, ds.All())
}

func TestDocumentStore_AllIsSnapshot(t *testing.T) {
	ds := NewDocumentStore()
	ds.Add([]model.Document{{"documentID": "a"}})

	snapshot := ds.All()
	ds.Add([]model.Document{{"documentID": "b"}})

	assert.Len(t, snapshot, 1)
	assert.Equal(t, 2, ds.Count())
}

func TestDocumentStore_ConcurrentAccess(t *testing.T) {
	ds := NewDocumentStore()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			ds.Add([]model.Document{{"title": "x"}})
		}()
		go func() {
			defer wg.Done()
			_ = ds.All()
		}()
	}
	wg.Wait()
	assert.Equal(t, 10, ds.Count())
}

func TestDocumentStore_ZeroValue(t *testing.T) {
	var ds DocumentStore

	assert.NotNil(t, ds.All())
	assert.Equal(t, 0, ds.Count())

	ds.Add([]model.Document{{"documentID": "a"}})
	docs := ds.All()
	require.Len(t, docs, 1)

	// Changing the returned slice leaves the stored documents untouched.
	docs[0] = model.Document{"documentID": "z"}
	_, found := ds.Get("z")
	assert.False(t, found)
	_, found = ds.Get("a")
	assert.True(t, found)
}
