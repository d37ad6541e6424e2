// Command probe sends a sample recommendation request to a running
// advisor instance and prints the response. Useful for smoke-testing a
// deployment without opening the web UI.
package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/meeplewise/advisor/internal/domain/model"
)

// Default probe settings.
const (
	defaultBaseURL = "http://localhost:8080"
	defaultTimeout = 60 * time.Second
	defaultPlayers = 4
	defaultWeight  = 2.5
)

func main() {
	var (
		baseURL     = flag.String("url", defaultBaseURL, "Base URL of the service")
		playerCount = flag.Int("players", defaultPlayers, "Number of players in the group")
		weight      = flag.Float64("weight", defaultWeight, "Desired complexity, 1-5")
		mechanics   = flag.String("mechanics", "Worker Placement,Deck Building", "Comma-separated preferred mechanics")
		categories  = flag.String("categories", "Strategy", "Comma-separated preferred categories")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pref := model.PlayerPreference{
		WeightPreference: weightValue(*weight),
		Mechanics:        splitList(*mechanics),
		Categories:       splitList(*categories),
	}

	payload, err := json.Marshal(map[string]any{
		"player_count": *playerCount,
		"players":      []model.PlayerPreference{pref},
	})
	if err != nil {
		os.Stderr.WriteString("failed to encode request: " + err.Error() + "\n")
		os.Exit(1)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *baseURL+"/recommend", bytes.NewReader(payload))
	if err != nil {
		os.Stderr.WriteString("failed to build request: " + err.Error() + "\n")
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		os.Stderr.WriteString("request failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		os.Stderr.WriteString("failed to read response: " + err.Error() + "\n")
		os.Exit(1)
	}

	os.Stdout.WriteString(resp.Status + "\n")
	os.Stdout.Write(body)
	os.Stdout.WriteString("\n")
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}

func weightValue(w float64) *model.FlexFloat {
	f := model.FlexFloat(w)
	return &f
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
