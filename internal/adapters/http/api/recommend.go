package api

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"github.com/meeplewise/advisor/internal/domain/model"
	"github.com/meeplewise/advisor/pkg/logger"
)

// recommendRequest mirrors the JSON schema for POST /recommend.
// Players is a pointer so a present-but-empty list passes validation,
// matching the permissive original contract.
type recommendRequest struct {
	PlayerCount int                       `json:"player_count" validate:"required,gt=0"`
	Players     *[]model.PlayerPreference `json:"players" validate:"required"`
}

type recommendResponse struct {
	Success         bool   `json:"success"`
	Recommendations string `json:"recommendations"`
}

// RecommendHandler handles recommendation requests.
type RecommendHandler struct {
	recommender Recommender
	validate    *validator.Validate
	log         logger.Logger
}

// NewRecommendHandler creates a new recommend handler.
func NewRecommendHandler(recommender Recommender) *RecommendHandler {
	return &RecommendHandler{
		recommender: recommender,
		validate:    validator.New(),
		log:         logger.Named("api"),
	}
}

// HandleRecommend handles POST /recommend requests.
func (h *RecommendHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		writeError(w, http.StatusBadRequest, "Request must be JSON")
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Request must be JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required data")
		return
	}

	recommendations, err := h.recommender.Recommend(ctx, req.PlayerCount, *req.Players)
	if err != nil {
		h.log.Error(ctx, "recommendation failed",
			logger.String("request_id", RequestIDFromContext(ctx)),
			logger.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, recommendResponse{Success: true, Recommendations: recommendations})
}
