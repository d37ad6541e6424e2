// Package scoring computes preference scores for candidate games.
package scoring

import (
	"math"

	"github.com/meeplewise/advisor/internal/domain/model"
)

// Default scoring weights.
const (
	defaultBaseScore          = 10.0
	defaultRatingCountDivisor = 1000.0
	defaultPopularityCap      = 5.0
	defaultMechanicBonus      = 2.0
	defaultCategoryBonus      = 1.5
)

// Result contains the computed score for one game.
// Eligible is false when the group's player count falls outside the
// game's supported range; such games are always excluded. An eligible
// game can still carry a zero score after the floor.
type Result struct {
	Score    float64
	Eligible bool
}

// Scorer computes a score from a game and the group's preferences.
type Scorer interface {
	// Score is pure: the same inputs always yield the same result.
	Score(game model.GameInfo, players []model.PlayerPreference, playerCount int) Result
}

// PreferenceScorer implements Scorer with configurable weights.
type PreferenceScorer struct {
	baseScore          float64
	ratingCountDivisor float64
	popularityCap      float64
	mechanicBonus      float64
	categoryBonus      float64
}

// Option applies a configuration option to the PreferenceScorer.
type Option func(*PreferenceScorer)

// WithBaseScore sets the starting score every eligible game receives.
func WithBaseScore(base float64) Option {
	return func(s *PreferenceScorer) {
		s.baseScore = base
	}
}

// WithRatingCountDivisor sets the divisor applied to the rating count
// when computing the popularity bonus.
func WithRatingCountDivisor(divisor float64) Option {
	return func(s *PreferenceScorer) {
		if divisor > 0 {
			s.ratingCountDivisor = divisor
		}
	}
}

// WithPopularityCap caps the popularity bonus.
func WithPopularityCap(cap float64) Option {
	return func(s *PreferenceScorer) {
		if cap >= 0 {
			s.popularityCap = cap
		}
	}
}

// WithMechanicBonus sets the per-match bonus for preferred mechanics.
func WithMechanicBonus(bonus float64) Option {
	return func(s *PreferenceScorer) {
		s.mechanicBonus = bonus
	}
}

// WithCategoryBonus sets the per-match bonus for preferred categories.
func WithCategoryBonus(bonus float64) Option {
	return func(s *PreferenceScorer) {
		s.categoryBonus = bonus
	}
}

// NewPreferenceScorer creates a scorer with default weights, adjusted by options.
func NewPreferenceScorer(opts ...Option) *PreferenceScorer {
	s := &PreferenceScorer{
		baseScore:          defaultBaseScore,
		ratingCountDivisor: defaultRatingCountDivisor,
		popularityCap:      defaultPopularityCap,
		mechanicBonus:      defaultMechanicBonus,
		categoryBonus:      defaultCategoryBonus,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Score computes the preference score for one game.
//
// The player-count gate short-circuits everything else: a game that
// cannot seat the group scores zero and is marked ineligible. Otherwise
// the score starts at the base, adds the community rating and a capped
// popularity bonus, subtracts each player's complexity mismatch, adds
// per-match mechanic and category bonuses, and floors at zero.
func (s *PreferenceScorer) Score(game model.GameInfo, players []model.PlayerPreference, playerCount int) Result {
	if playerCount < game.MinPlayers || playerCount > game.MaxPlayers {
		return Result{Score: 0, Eligible: false}
	}

	score := s.baseScore
	score += game.Rating
	score += math.Min(s.popularityCap, float64(game.NumRatings)/s.ratingCountDivisor)

	for _, p := range players {
		if p.WeightPreference != nil {
			score -= math.Abs(game.Weight - float64(*p.WeightPreference))
		}
		if len(p.Mechanics) > 0 {
			score += s.mechanicBonus * float64(countMatches(p.Mechanics, game.Mechanics))
		}
		if len(p.Categories) > 0 {
			score += s.categoryBonus * float64(countMatches(p.Categories, game.Categories))
		}
	}

	return Result{Score: math.Max(0, score), Eligible: true}
}

// countMatches returns how many of wanted appear in have.
func countMatches(wanted, have []string) int {
	set := make(map[string]struct{}, len(have))
	for _, v := range have {
		set[v] = struct{}{}
	}
	matches := 0
	for _, v := range wanted {
		if _, ok := set[v]; ok {
			matches++
		}
	}
	return matches
}
