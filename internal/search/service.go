package search

import (
	"context"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"github.com/gcbaptista/go-simplified-search/config"
	searchErrors "github.com/gcbaptista/go-simplified-search/internal/errors"
	"github.com/gcbaptista/go-simplified-search/internal/pipeline"
	"github.com/gcbaptista/go-simplified-search/internal/ranking"
	"github.com/gcbaptista/go-simplified-search/internal/typoutil"
)

// Service ranks in-memory items against a search term.
// It holds no per-search state and can be shared by concurrent callers.
type Service struct {
	pipeline          *pipeline.Pipeline
	pool              *ants.Pool
	workers           int
	parallelThreshold int
	logger            *logrus.Entry
}

// Option configures a Service.
type Option func(*Service) error

// WithPipeline sets the token pipeline used for both the term and the fields.
func WithPipeline(p *pipeline.Pipeline) Option {
	return func(s *Service) error {
		if p == nil {
			return searchErrors.NewValidationError("pipeline", "must not be nil")
		}
		s.pipeline = p
		return nil
	}
}

// WithPoolSize sets the number of workers scoring large collections.
// A size of 1 disables parallel scoring.
func WithPoolSize(size int) Option {
	return func(s *Service) error {
		if size < 1 {
			size = 1
		}
		if s.pool != nil {
			s.pool.Release()
			s.pool = nil
		}
		s.workers = size
		if size == 1 {
			return nil
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// WithParallelThreshold sets the candidate count from which scoring runs on the pool.
func WithParallelThreshold(threshold int) Option {
	return func(s *Service) error {
		if threshold < 1 {
			threshold = 1
		}
		s.parallelThreshold = threshold
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *logrus.Entry) Option {
	return func(s *Service) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// NewService creates a search Service. By default it uses the
// Lowercase -> ASCII-Folding -> Tokenize pipeline and one worker per CPU.
func NewService(opts ...Option) (*Service, error) {
	return newService([]Option{WithPoolSize(runtime.NumCPU())}, opts)
}

// NewSequentialService creates a Service that scores every candidate on the
// calling goroutine. No worker pool is started unless opts include WithPoolSize.
func NewSequentialService(opts ...Option) (*Service, error) {
	return newService([]Option{WithPoolSize(1)}, opts)
}

func newService(defaults []Option, opts []Option) (*Service, error) {
	s := &Service{
		pipeline:          pipeline.Default(),
		parallelThreshold: config.DefaultParallelThreshold,
		logger:            logrus.NewEntry(logrus.StandardLogger()).WithField("component", "search"),
	}

	for _, opt := range append(defaults, opts...) {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}
	return s, nil
}

// NewServiceFromSettings creates a Service configured by settings.
func NewServiceFromSettings(settings config.SearchSettings, opts ...Option) (*Service, error) {
	if problems := settings.Validate(); len(problems) > 0 {
		return nil, searchErrors.NewValidationError("settings", strings.Join(problems, "; "))
	}
	settings.ApplyDefaults()

	p, err := pipeline.FromNames(settings.Filters)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithPipeline(p),
		WithPoolSize(settings.Workers),
		WithParallelThreshold(settings.ParallelThreshold),
	}
	return NewService(append(base, opts...)...)
}

// Release frees the worker pool. Searches issued afterwards are scored sequentially.
func (s *Service) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// TermTokens runs a search term through the pipeline.
func (s *Service) TermTokens(term string) []string {
	return s.pipeline.Run(term)
}

// FieldTokens runs a field value through the pipeline, keeping only its first MaxFieldLength characters.
func (s *Service) FieldTokens(fieldValue string) []string {
	return s.pipeline.Run(typoutil.TruncateRunes(fieldValue, MaxFieldLength))
}

// Search returns the items whose field resembles term, most relevant first.
// Items with equal scores keep their input order.
//
// It fails with an error matching errors.ErrInvalidInput when items is nil,
// term is empty or fieldOf is nil. When ctx is cancelled no further items are
// scored; the items ranked so far are returned together with ctx.Err().
func Search[T any](ctx context.Context, s *Service, items []T, term string, fieldOf FieldSelector[T]) ([]T, error) {
	hits, err := Rank(ctx, s, items, term, fieldOf)
	if hits == nil {
		return nil, err
	}

	results := make([]T, len(hits))
	for i, hit := range hits {
		results[i] = hit.Item
	}
	return results, err
}

// Rank works like Search but also returns each item's score.
func Rank[T any](ctx context.Context, s *Service, items []T, term string, fieldOf FieldSelector[T]) ([]Hit[T], error) {
	if items == nil {
		return nil, searchErrors.NewValidationError("items", "must not be nil")
	}
	if term == "" {
		return nil, searchErrors.NewValidationError("searchTerm", "must not be null or empty")
	}
	if fieldOf == nil {
		return nil, searchErrors.NewValidationError("fieldSelector", "must not be nil")
	}

	startTime := time.Now()
	termTokens := s.TermTokens(term)

	scores, err := s.scoreAll(ctx, len(items), func(i int) float64 {
		fieldValue := fieldOf(items[i])
		if fieldValue == "" {
			return 0
		}
		return ranking.Score(s.FieldTokens(fieldValue), termTokens)
	})

	hits := make([]Hit[T], 0)
	for i, score := range scores {
		if score > 0 {
			hits = append(hits, Hit[T]{Item: items[i], Score: score})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Score > hits[b].Score
	})

	s.logger.WithFields(logrus.Fields{
		"candidates":  len(items),
		"matches":     len(hits),
		"term_tokens": len(termTokens),
		"took":        time.Since(startTime),
	}).Debug("search completed")

	return hits, err
}

// scoreAll computes scoreAt for every index in [0, n). Scores are stored by
// index, so the result does not depend on how the work was scheduled.
// Indexes left unscored after cancellation keep a score of 0.
func (s *Service) scoreAll(ctx context.Context, n int, scoreAt func(i int) float64) ([]float64, error) {
	scores := make([]float64, n)

	if s.pool == nil || s.workers < 2 || n < s.parallelThreshold {
		for i := 0; i < n; i++ {
			if ctx.Err() != nil {
				break
			}
			scores[i] = scoreAt(i)
		}
		return scores, ctx.Err()
	}

	chunkSize := (n + s.workers - 1) / s.workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		task := func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				if ctx.Err() != nil {
					return
				}
				scores[i] = scoreAt(i)
			}
		}

		wg.Add(1)
		if err := s.pool.Submit(task); err != nil {
			// Pool released or overloaded; score this chunk on the caller's goroutine.
			s.logger.WithError(err).Debug("scoring chunk inline")
			task()
		}
	}
	wg.Wait()

	return scores, ctx.Err()
}
