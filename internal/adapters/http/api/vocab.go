package api

import (
	"net/http"

	"github.com/meeplewise/advisor/internal/domain/vocab"
)

// vocabResponse carries the reference catalogs for the UI pickers.
type vocabResponse struct {
	Mechanics  []string `json:"mechanics"`
	Categories []string `json:"categories"`
}

// VocabHandler serves the reference vocabularies.
type VocabHandler struct{}

// NewVocabHandler creates a new vocab handler.
func NewVocabHandler() *VocabHandler {
	return &VocabHandler{}
}

// HandleVocab handles GET /vocab requests.
func (h *VocabHandler) HandleVocab(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, vocabResponse{
		Mechanics:  vocab.Mechanics,
		Categories: vocab.Categories,
	})
}
