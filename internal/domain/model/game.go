// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// FlexFloat is a float64 that unmarshals from either a JSON number or a
// numeric string ("2.5"). Callers submit weight preferences in both forms.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("flex float: %w", err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("flex float %q: %w", raw, err)
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("flex float: %w", err)
	}
	*f = FlexFloat(v)
	return nil
}

// PlayerPreference captures one participant's tastes. All fields are
// optional; a nil/empty field means "no preference".
type PlayerPreference struct {
	WeightPreference *FlexFloat `json:"weight_preference,omitempty"`
	Mechanics        []string   `json:"mechanics,omitempty"`
	Categories       []string   `json:"categories,omitempty"`
}

// GameInfo is the normalized view of one game's upstream metadata.
type GameInfo struct {
	Name        string
	MinPlayers  int
	MaxPlayers  int
	Playtime    int     // minutes
	Weight      float64 // complexity, 0 (light) to 5 (heavy)
	Rating      float64 // 0-10
	NumRatings  int
	Description string
	Mechanics   []string
	Categories  []string
}

// ScoredGame pairs a game with its computed preference score.
type ScoredGame struct {
	Info  GameInfo
	Score float64
}
