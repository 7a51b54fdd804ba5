package handlers

import (
	"log"
	"net/http"

	"dayout-server/config"
	"dayout-server/models"
	services "dayout-server/service"
)

const TEXT_QUERY_ARG = "text"

// GeocodeHandler exposes place autocomplete for the planning UI.
type GeocodeHandler struct {
	geocodeService *services.GeocodeService
}

func NewGeocodeHandler(geocodeService *services.GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{geocodeService: geocodeService}
}

// Autocomplete handles GET /v1/geocode/autocomplete?text={query}
func (h *GeocodeHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get(TEXT_QUERY_ARG)

	suggestions, err := h.geocodeService.Autocomplete(text)
	if err != nil {
		log.Printf("[GeocodeHandler] Autocomplete failed: %v", err)
		if len(text) < config.AUTOCOMPLETE_MIN_QUERY_LEN {
			writeJSON(w, http.StatusBadRequest, models.AutocompleteResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusBadGateway, models.AutocompleteResponse{Error: "failed to fetch location suggestions"})
		return
	}

	writeJSON(w, http.StatusOK, models.AutocompleteResponse{
		Success:     true,
		Suggestions: suggestions,
	})
}
