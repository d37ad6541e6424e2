// Package app wires the recommendation pipeline: query building, candidate
// discovery, detail fetch, scoring, ranking, and rendering.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/meeplewise/advisor/internal/adapters/bgg"
	"github.com/meeplewise/advisor/internal/domain/dedupe"
	"github.com/meeplewise/advisor/internal/domain/model"
	"github.com/meeplewise/advisor/internal/domain/query"
	"github.com/meeplewise/advisor/internal/domain/rank"
	"github.com/meeplewise/advisor/internal/domain/scoring"
	"github.com/meeplewise/advisor/internal/render"
	"github.com/meeplewise/advisor/pkg/logger"
	"github.com/meeplewise/advisor/pkg/metrics"
)

// Default pipeline configuration constants.
const (
	defaultCandidateCap     = 30
	defaultTopN             = 3
	defaultFetchConcurrency = 4
)

// Searcher discovers candidate games for a query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]bgg.SearchItem, error)
}

// Fetcher retrieves full metadata for one candidate id.
type Fetcher interface {
	GameDetails(ctx context.Context, id string) (*bgg.ThingItem, error)
}

// Upstream bundles the game database operations the pipeline needs.
// *bgg.Client satisfies it.
type Upstream interface {
	Searcher
	Fetcher
}

// Service runs the recommendation pipeline. One Service serves all
// requests; per-request state stays local to Recommend.
type Service struct {
	upstream Upstream
	scorer   scoring.Scorer

	candidateCap     int
	topN             int
	fetchConcurrency int

	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithUpstream sets the game database client.
func WithUpstream(upstream Upstream) Option {
	return func(s *Service) {
		if upstream != nil {
			s.upstream = upstream
		}
	}
}

// WithScorer replaces the default preference scorer.
func WithScorer(scorer scoring.Scorer) Option {
	return func(s *Service) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithCandidateCap bounds how many search results are processed.
func WithCandidateCap(cap int) Option {
	return func(s *Service) {
		if cap > 0 {
			s.candidateCap = cap
		}
	}
}

// WithTopN sets how many recommendations are returned.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

// WithFetchConcurrency bounds parallel detail fetches. 1 reproduces
// strictly sequential processing.
func WithFetchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.fetchConcurrency = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		scorer:           scoring.NewPreferenceScorer(),
		candidateCap:     defaultCandidateCap,
		topN:             defaultTopN,
		fetchConcurrency: defaultFetchConcurrency,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Get()
	}

	return s
}

// Recommend runs the full pipeline for one group and returns the
// rendered HTML. Upstream failures never escape as errors: a failed or
// empty search yields the fixed search-failed message, and a broken
// candidate is skipped while the rest of the batch continues.
func (s *Service) Recommend(ctx context.Context, playerCount int, players []model.PlayerPreference) (string, error) {
	if s.upstream == nil {
		return "", ErrNoUpstream
	}

	start := time.Now()
	defer func() {
		metrics.RecordPipelineLatency(float64(time.Since(start).Milliseconds()))
	}()

	q := query.Build(players)
	items, err := s.upstream.Search(ctx, q)
	if err != nil {
		s.log.Warn(ctx, "search failed", logger.String("query", q), logger.Error(err))
		metrics.RecordEmptyRecommendation()
		return render.SearchFailed, nil
	}
	if len(items) == 0 {
		s.log.Info(ctx, "search returned no candidates", logger.String("query", q))
		metrics.RecordEmptyRecommendation()
		return render.SearchFailed, nil
	}
	if len(items) > s.candidateCap {
		items = items[:s.candidateCap]
	}

	details := s.fetchAll(ctx, items)

	deduper := dedupe.NewNameDeduper()
	var scored []model.ScoredGame

	// Candidates are consumed in original search order so that
	// first-seen-wins dedup holds regardless of fetch concurrency.
	for i, item := range items {
		detail := details[i]
		if detail == nil {
			metrics.RecordCandidateSkipped()
			continue
		}

		info, err := bgg.Normalize(item.DisplayName(), detail)
		if err != nil {
			s.log.Warn(ctx, "skipping candidate", logger.String("id", item.ID), logger.Error(err))
			metrics.RecordCandidateSkipped()
			continue
		}

		metrics.RecordGameScored()
		res := s.scorer.Score(info, players, playerCount)
		if !res.Eligible {
			metrics.RecordGameIneligible()
			s.log.Debug(ctx, "game ineligible for player count",
				logger.String("name", info.Name), logger.Int("player_count", playerCount))
			continue
		}
		if res.Score <= 0 {
			continue
		}
		if deduper.SeenAndRecord(info.Name) {
			continue
		}

		scored = append(scored, model.ScoredGame{Info: info, Score: res.Score})
	}

	top := rank.Top(scored, s.topN)
	if len(top) == 0 {
		metrics.RecordEmptyRecommendation()
	} else {
		metrics.RecordRecommendationServed()
	}

	s.log.Info(ctx, "recommendation pipeline finished",
		logger.String("query", q),
		logger.Int("candidates", len(items)),
		logger.Int("scored", len(scored)),
		logger.Int("returned", len(top)))

	return render.Recommendations(top), nil
}

// fetchAll retrieves details for every candidate with bounded
// concurrency. The result slice is index-aligned with items; a nil
// entry marks a failed fetch (already logged).
func (s *Service) fetchAll(ctx context.Context, items []bgg.SearchItem) []*bgg.ThingItem {
	details := make([]*bgg.ThingItem, len(items))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.fetchConcurrency)

	for i, item := range items {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			detail, err := s.upstream.GameDetails(ctx, id)
			if err != nil {
				s.log.Warn(ctx, "detail fetch failed", logger.String("id", id), logger.Error(err))
				return
			}
			details[i] = detail
		}(i, item.ID)
	}
	wg.Wait()

	return details
}
