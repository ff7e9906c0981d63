package http

import (
	"encoding/json"
	"net/http"

	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/internal/utils"
	"github.com/mikas-m/wortschatz/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.Create(r.Context(), userID, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

// listNotes returns the user's notes ordered by position. With ?order=recent
// the newest notes come first instead.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var (
		notes []models.Note
		err   error
	)
	if r.URL.Query().Get("order") == "recent" {
		notes, err = h.services.NoteService.ListRecent(r.Context(), userID)
	} else {
		notes, err = h.services.NoteService.List(r.Context(), userID)
	}
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) updateNoteField(w http.ResponseWriter, r *http.Request) {
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

	var patch models.FieldUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateField(r.Context(), userID, recordID, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AjaxResponse{Status: models.StatusSuccess, Note: &note}, http.StatusOK)
}

func (h *Handler) batchUpdateNotes(w http.ResponseWriter, r *http.Request) {
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

	notes, changed, err := h.services.NoteService.BatchUpdate(r.Context(), userID, req.Updates)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NoteListResponse{Notes: notes, Changed: changed}, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	recordID, err := recordIDFromRequest(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.NoteService.Delete(r.Context(), userID, recordID); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AjaxResponse{Status: models.StatusSuccess, Reload: true}, http.StatusOK)
}
