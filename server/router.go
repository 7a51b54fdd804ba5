package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Route surfaces registered by the handlers. Kept as small interfaces so the
// router can be tested with stand-ins.
type ItineraryRoutes interface {
	PlanItineraries(w http.ResponseWriter, r *http.Request)
	Route(w http.ResponseWriter, r *http.Request)
}

type MetadataRoutes interface {
	GetOptions(w http.ResponseWriter, r *http.Request)
}

type GeocodeRoutes interface {
	Autocomplete(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	itineraryHandler ItineraryRoutes
	metadataHandler  MetadataRoutes
	geocodeHandler   GeocodeRoutes
	router           *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	itineraryHandler ItineraryRoutes,
	metadataHandler MetadataRoutes,
	geocodeHandler GeocodeRoutes,
	router *mux.Router) *Router {
	return &Router{
		itineraryHandler: itineraryHandler,
		metadataHandler:  metadataHandler,
		geocodeHandler:   geocodeHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/itineraries/plan", r.itineraryHandler.PlanItineraries).Methods("POST")
	r.router.HandleFunc("/v1/itineraries/route", r.itineraryHandler.Route).Methods("POST")

	// expects {category} in dinings|movies|events|activities|plays
	r.router.HandleFunc("/v1/metadata/{category}", r.metadataHandler.GetOptions).Methods("GET")

	// expects ?text={query}
	r.router.HandleFunc("/v1/geocode/autocomplete", r.geocodeHandler.Autocomplete).Methods("GET")

	r.router.HandleFunc("/ping", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "pong"}`))
	}).Methods("GET")
}
