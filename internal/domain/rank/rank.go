// Package rank orders scored games for presentation.
package rank

import (
	"sort"

	"github.com/meeplewise/advisor/internal/domain/model"
)

// Top sorts games by score descending and returns at most n of them.
// The sort is stable, so games with equal scores keep their original
// search order. The input slice is not modified.
func Top(games []model.ScoredGame, n int) []model.ScoredGame {
	if n <= 0 {
		return nil
	}

	ranked := make([]model.ScoredGame, len(games))
	copy(ranked, games)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
