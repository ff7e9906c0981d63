package http

import (
	"net/http"

	"github.com/mikas-m/wortschatz/internal/utils"
	"github.com/mikas-m/wortschatz/models"
)

// getQuizCard draws a random flashcard from the user's word collection.
// Both query parameters are optional: kind defaults to the standard
// collection and direction to term-to-translation.
func (h *Handler) getQuizCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	kind := models.WordKind(r.URL.Query().Get("kind"))
	direction := models.QuizDirection(r.URL.Query().Get("direction"))

	card, err := h.services.QuizService.Card(r.Context(), userID, kind, direction)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, card, http.StatusOK)
}
