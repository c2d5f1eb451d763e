package search

// FieldSelector extracts the searchable text of an item.
// An empty string marks the item as unsearchable; it is then never returned.
type FieldSelector[T any] func(item T) string

// Hit is a candidate together with its similarity score.
type Hit[T any] struct {
	Item  T
	Score float64
}

// MaxFieldLength is the number of characters of a field that are searched.
// Longer field values are cut before tokenization to bound the cost per candidate.
const MaxFieldLength = 5000
