// Package pipeline provides the token filters and the pipeline that chains them.
// Both the search term and every candidate field run through the same pipeline,
// so the tokens they produce are directly comparable.
package pipeline

import (
	"fmt"
	"strings"

	searchErrors "github.com/gcbaptista/go-simplified-search/internal/errors"
)

// Filter transforms a batch of strings into a new batch of strings.
// Implementations must be deterministic and must not modify the input slice.
type Filter interface {
	Transform(batch []string) []string
}

// FilterFunc adapts an ordinary function to the Filter interface.
type FilterFunc func(batch []string) []string

// Transform calls f(batch).
func (f FilterFunc) Transform(batch []string) []string {
	return f(batch)
}

// Filter names accepted by FilterByName and FromNames.
const (
	LowercaseFilterName    = "lowercase"
	ASCIIFoldingFilterName = "ascii_folding"
	TokenizeFilterName     = "tokenize"
)

// DefaultFilterNames is the canonical filter order: normalize casing and
// diacritics before splitting, so token boundaries are computed on normalized text.
var DefaultFilterNames = []string{LowercaseFilterName, ASCIIFoldingFilterName, TokenizeFilterName}

// Pipeline applies an ordered list of filters, left to right.
type Pipeline struct {
	filters []Filter
}

// New creates a pipeline from the given filters. Order matters: any order is
// accepted, but changing it changes the produced tokens.
func New(filters ...Filter) *Pipeline {
	copied := make([]Filter, len(filters))
	copy(copied, filters)
	return &Pipeline{filters: copied}
}

// Default returns the Lowercase -> ASCII-Folding -> Tokenize pipeline.
func Default() *Pipeline {
	return New(LowercaseFilter{}, ASCIIFoldingFilter{}, TokenizeFilter{})
}

// FilterByName returns the built-in filter registered under name.
func FilterByName(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LowercaseFilterName:
		return LowercaseFilter{}, nil
	case ASCIIFoldingFilterName:
		return ASCIIFoldingFilter{}, nil
	case TokenizeFilterName:
		return TokenizeFilter{}, nil
	}
	return nil, searchErrors.NewValidationError("filters", fmt.Sprintf("unknown filter '%s'", name))
}

// FromNames builds a pipeline from filter names, in the given order.
func FromNames(names []string) (*Pipeline, error) {
	filters := make([]Filter, 0, len(names))
	for _, name := range names {
		filter, err := FilterByName(name)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter)
	}
	return New(filters...), nil
}

// Run folds the filters over the initial batch; each filter's output is the next filter's input.
func (p *Pipeline) Run(initial ...string) []string {
	batch := initial
	for _, filter := range p.filters {
		batch = filter.Transform(batch)
	}
	if batch == nil {
		return []string{}
	}
	return batch
}

// Len returns the number of filters in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.filters)
}
