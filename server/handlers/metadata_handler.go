package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"dayout-server/models"
	"dayout-server/models/catalog"
)

// MetadataHandler serves the distinct filter options per stop category from
// the versioned catalog tables.
type MetadataHandler struct {
}

func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// GetOptions handles GET /v1/metadata/{category}
func (h *MetadataHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	options, ok := catalog.ByCategory[category]
	if !ok {
		writeJSON(w, http.StatusNotFound, models.MetadataResponse{Error: "unknown category: " + category})
		return
	}

	// Copy so the common filters never leak into the catalog tables.
	merged := make(map[string][]string, len(options)+2)
	for k, v := range options {
		merged[k] = v
	}
	merged["amenities"] = catalog.AmenityFilters
	merged["crowdTolerance"] = catalog.CrowdTolerance

	writeJSON(w, http.StatusOK, models.MetadataResponse{
		Success: true,
		Version: catalog.Version,
		Options: merged,
	})
}
