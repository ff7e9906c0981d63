package http

import (
	"encoding/json"
	"net/http"

	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/internal/utils"
	"github.com/mikas-m/wortschatz/models"
)

func (h *Handler) listVerbs(w http.ResponseWriter, r *http.Request) {
	verbs, err := h.services.VerbService.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, verbs, http.StatusOK)
}

// importVerbs replaces the whole irregular-verbs table with the posted rows.
func (h *Handler) importVerbs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var verbs []models.IrregularVerb
	if err := json.NewDecoder(r.Body).Decode(&verbs); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	imported, err := h.services.VerbService.Import(r.Context(), verbs)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Info().Int("imported", imported).Msg("irregular verbs replaced")

	utils.WriteJSON(w, models.VerbImportResponse{Imported: imported}, http.StatusOK)
}
