// Package render formats ranked games as presentation-ready HTML.
package render

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/meeplewise/advisor/internal/domain/model"
)

// Fixed user-facing messages. SearchFailed covers a failed or empty
// search before any scoring happens; NoMatches covers the case where
// candidates were scored but none survived.
const (
	SearchFailed = "I'm sorry, I couldn't find any games at the moment. Please try again."
	NoMatches    = "<p>No games found matching your criteria.</p>"
)

const (
	descriptionLimit = 200
	listedTags       = 3
)

// gameView is the precomputed per-block template payload.
type gameView struct {
	Index       int
	Name        string
	MinPlayers  int
	MaxPlayers  int
	Playtime    int
	Rating      string
	NumRatings  string
	Weight      string
	Mechanics   string
	Categories  string
	Description string
}

var blockTemplate = template.Must(template.New("game").Parse(`
<div class="bg-white p-4 rounded-lg shadow-md mb-4">
	<h3 class="text-xl font-bold mb-2">{{.Index}}. {{.Name}}</h3>
	<div class="space-y-2">
		<p><span class="font-semibold">Players:</span> {{.MinPlayers}}-{{.MaxPlayers}}</p>
		<p><span class="font-semibold">Playing Time:</span> {{.Playtime}} minutes</p>
		<p><span class="font-semibold">BGG Rating:</span> {{.Rating}}/10 ({{.NumRatings}} ratings)</p>
		<p><span class="font-semibold">Complexity:</span> {{.Weight}}/5</p>
		<p><span class="font-semibold">Mechanics:</span> {{.Mechanics}}</p>
		<p><span class="font-semibold">Categories:</span> {{.Categories}}</p>
		<p class="text-sm mt-2">{{.Description}}</p>
	</div>
</div>
`))

// Recommendations renders up to the ranked games as 1-indexed HTML
// blocks. An empty list yields the fixed no-matches message.
func Recommendations(games []model.ScoredGame) string {
	if len(games) == 0 {
		return NoMatches
	}

	var b strings.Builder
	for i, g := range games {
		v := gameView{
			Index:       i + 1,
			Name:        g.Info.Name,
			MinPlayers:  g.Info.MinPlayers,
			MaxPlayers:  g.Info.MaxPlayers,
			Playtime:    g.Info.Playtime,
			Rating:      strconv.FormatFloat(g.Info.Rating, 'f', 1, 64),
			NumRatings:  humanize.Comma(int64(g.Info.NumRatings)),
			Weight:      strconv.FormatFloat(g.Info.Weight, 'f', -1, 64),
			Mechanics:   joinFirst(g.Info.Mechanics, listedTags),
			Categories:  joinFirst(g.Info.Categories, listedTags),
			Description: truncate(g.Info.Description, descriptionLimit) + "...",
		}
		// The template is a compile-time constant; execution into a
		// strings.Builder cannot fail.
		_ = blockTemplate.Execute(&b, v)
	}
	return b.String()
}

// joinFirst joins at most n entries with a comma.
func joinFirst(values []string, n int) string {
	if len(values) > n {
		values = values[:n]
	}
	return strings.Join(values, ", ")
}

// truncate cuts s to at most limit runes. The cut is by raw character
// count, not word boundary.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
