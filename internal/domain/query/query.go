// Package query builds upstream search queries from player preferences.
package query

import (
	"strings"

	"github.com/meeplewise/advisor/internal/domain/model"
)

// fallbackTerms is used when no player specified any category.
var fallbackTerms = []string{"Strategy", "Family", "Party"}

// Build produces a single space-joined search string from the players'
// category preferences. Categories are collected in first-seen order
// across the whole player list, deduplicated globally. Always returns a
// non-empty string.
func Build(players []model.PlayerPreference) string {
	var terms []string
	seen := make(map[string]struct{})

	for _, p := range players {
		for _, cat := range p.Categories {
			if _, ok := seen[cat]; ok {
				continue
			}
			seen[cat] = struct{}{}
			terms = append(terms, cat)
		}
	}

	if len(terms) == 0 {
		terms = fallbackTerms
	}
	return strings.Join(terms, " ")
}
