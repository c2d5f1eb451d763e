// Package config provides configuration structures for the search service.
// It defines the search settings (pipeline and scoring concurrency) and the
// server settings used by the HTTP API.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gcbaptista/go-simplified-search/internal/pipeline"
)

// DefaultParallelThreshold is the candidate count from which scoring is spread over the worker pool.
const DefaultParallelThreshold = 256

// SearchSettings contains the configuration of a search instance.
type SearchSettings struct {
	Filters           []string `json:"filters"`            // Ordered filter names applied to terms and fields (e.g., ["lowercase", "ascii_folding", "tokenize"])
	Workers           int      `json:"workers"`            // Size of the scoring worker pool
	ParallelThreshold int      `json:"parallel_threshold"` // Minimum number of candidates before scoring runs on the pool
}

// DefaultSearchSettings returns settings with every default applied.
func DefaultSearchSettings() SearchSettings {
	settings := SearchSettings{}
	settings.ApplyDefaults()
	return settings
}

// ApplyDefaults applies default values to the search settings
func (settings *SearchSettings) ApplyDefaults() {
	if len(settings.Filters) == 0 {
		settings.Filters = append([]string{}, pipeline.DefaultFilterNames...)
	}
	if settings.Workers <= 0 {
		settings.Workers = runtime.NumCPU()
	}
	if settings.ParallelThreshold <= 0 {
		settings.ParallelThreshold = DefaultParallelThreshold
	}
}

// Validate returns a list of problems with the settings; an empty list means the settings are usable.
func (settings *SearchSettings) Validate() []string {
	var problems []string

	seen := make(map[string]bool)
	for _, name := range settings.Filters {
		if strings.TrimSpace(name) == "" {
			problems = append(problems, "Filter name cannot be empty or whitespace-only")
			continue
		}
		if _, err := pipeline.FilterByName(name); err != nil {
			problems = append(problems, "Unknown filter '"+name+"' in filters")
		}
		if seen[name] {
			problems = append(problems, "Duplicate filter '"+name+"' found in filters")
		}
		seen[name] = true
	}

	if settings.Workers < 0 {
		problems = append(problems, fmt.Sprintf("workers must not be negative, got %d", settings.Workers))
	}
	if settings.ParallelThreshold < 0 {
		problems = append(problems, fmt.Sprintf("parallel_threshold must not be negative, got %d", settings.ParallelThreshold))
	}

	return problems
}
