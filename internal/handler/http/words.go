package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/internal/utils"
	"github.com/mikas-m/wortschatz/models"
)

// recordIDFromRequest parses the {id} URL parameter of a record route.
func recordIDFromRequest(r *http.Request) (int64, error) {
	recordID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || recordID <= 0 {
		return 0, ErrInvalidRecordID
	}
	return recordID, nil
}

func (h *Handler) createWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	word, err := h.services.WordService.Create(r.Context(), userID, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, word, http.StatusCreated)
}

func (h *Handler) listWords(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	kind := models.WordKind(r.URL.Query().Get("kind"))

	words, err := h.services.WordService.List(r.Context(), userID, kind)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, words, http.StatusOK)
}

func (h *Handler) updateWordField(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	recordID, err := recordIDFromRequest(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	kind := models.WordKind(r.URL.Query().Get("kind"))

	var patch models.FieldUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	word, err := h.services.WordService.UpdateField(r.Context(), userID, recordID, kind, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AjaxResponse{Status: models.StatusSuccess, Word: &word}, http.StatusOK)
}

func (h *Handler) batchUpdateWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.BatchUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	words, changed, err := h.services.WordService.BatchUpdate(r.Context(), userID, req.Kind, req.Updates)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WordListResponse{Words: words, Changed: changed}, http.StatusOK)
}

func (h *Handler) deleteWord(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	recordID, err := recordIDFromRequest(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	kind := models.WordKind(r.URL.Query().Get("kind"))

	if err := h.services.WordService.Delete(r.Context(), userID, recordID, kind); err != nil {
		respondError(w, r, err)
		return
	}

	// positions below the removed record shift up, so the caller must re-fetch
	utils.WriteJSON(w, models.AjaxResponse{Status: models.StatusSuccess, Reload: true}, http.StatusOK)
}
