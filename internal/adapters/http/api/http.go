// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/meeplewise/advisor/internal/domain/model"
)

// Recommender is the pipeline dependency required by HTTP handlers.
// Using an interface keeps the handler layer loosely coupled to the
// orchestrator implementation.
type Recommender interface {
	Recommend(ctx context.Context, playerCount int, players []model.PlayerPreference) (string, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	recommendHandler *RecommendHandler
	vocabHandler     *VocabHandler
	healthHandler    *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(recommender Recommender) *Server {
	return &Server{
		recommendHandler: NewRecommendHandler(recommender),
		vocabHandler:     NewVocabHandler(),
		healthHandler:    NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/vocab", RequestIDMiddleware(MetricsMiddleware(s.vocabHandler.HandleVocab, "vocab")))
	mux.HandleFunc("/recommend", RequestIDMiddleware(MetricsMiddleware(s.recommendHandler.HandleRecommend, "recommend")))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
