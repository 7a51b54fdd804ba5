package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"

	"dayout-server/config"
	"dayout-server/models"
	services "dayout-server/service"
)

// ItineraryHandler exposes the planning and route endpoints.
type ItineraryHandler struct {
	itineraryService *services.ItineraryService
	routeService     *services.RouteService
}

func NewItineraryHandler(itineraryService *services.ItineraryService, routeService *services.RouteService) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryService: itineraryService,
		routeService:     routeService,
	}
}

// PlanItineraries handles POST /v1/itineraries/plan
func (h *ItineraryHandler) PlanItineraries(w http.ResponseWriter, r *http.Request) {
	var req models.PlanItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.PlanItineraryResponse{Error: "invalid request body"})
		return
	}

	response, err := h.itineraryService.Plan(req)
	if err != nil {
		log.Printf("[ItineraryHandler] Plan failed: %v", err)
		switch {
		case errors.Is(err, services.ErrSlotUnresolved):
			writeJSON(w, http.StatusUnprocessableEntity, models.PlanItineraryResponse{Error: err.Error()})
		case errors.Is(err, services.ErrRouteUnavailable), errors.Is(err, services.ErrMalformedResponse):
			writeJSON(w, http.StatusBadGateway, models.PlanItineraryResponse{Error: "route unavailable"})
		default:
			writeJSON(w, http.StatusBadRequest, models.PlanItineraryResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Route handles POST /v1/itineraries/route
func (h *ItineraryHandler) Route(w http.ResponseWriter, r *http.Request) {
	var req models.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.RouteResponse{Error: "invalid request body"})
		return
	}

	profile := req.Profile
	if profile == "" {
		profile = config.DEFAULT_PROFILE
	}
	locations := req.Locations
	if req.ReturnToStart && len(locations) > 0 {
		// Synthetic final waypoint; the route service passes it through.
		locations = append(locations, locations[0])
	}

	geometry, err := h.routeService.Geometry(locations, profile)
	if err != nil {
		log.Printf("[ItineraryHandler] Route failed: %v", err)
		if errors.Is(err, services.ErrNotEnoughLocations) {
			writeJSON(w, http.StatusBadRequest, models.RouteResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusBadGateway, models.RouteResponse{Error: "route unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, models.RouteResponse{
		Success:         true,
		Polyline:        geometry.Polyline,
		DistanceKm:      math.Round(geometry.Distance/1000*10) / 10,
		DurationMinutes: int(math.Ceil(geometry.Duration / 60)),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}
