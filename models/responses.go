package models

// Response envelopes for the day-out server's own HTTP API.

// PlanItineraryRequest is the POST body of /v1/itineraries/plan. SessionID is
// empty on the first request; regeneration after edits reuses the ID so
// already-served stop combinations are excluded.
type PlanItineraryRequest struct {
	SessionID   string      `json:"sessionId,omitempty"`
	Constraints Constraints `json:"constraints"`
	Profile     string      `json:"profile,omitempty"`
}

type PlanItineraryResponse struct {
	Success           bool              `json:"success"`
	SessionID         string            `json:"sessionId,omitempty"`
	Itineraries       []RankedItinerary `json:"itineraries,omitempty"`
	TotalCombinations int               `json:"totalCombinations,omitempty"`
	NoNewPermutations bool              `json:"noNewPermutations,omitempty"`
	Error             string            `json:"error,omitempty"`
}

// RouteRequest is the POST body of /v1/itineraries/route. ReturnToStart
// appends the first location as a synthetic final waypoint before the
// geometry call; the route service itself has no opinion on it.
type RouteRequest struct {
	Locations     []Location `json:"locations"`
	Profile       string     `json:"profile,omitempty"`
	ReturnToStart bool       `json:"returnToStart,omitempty"`
}

type RouteResponse struct {
	Success         bool       `json:"success"`
	Polyline        []Location `json:"polyline,omitempty"`
	DistanceKm      float64    `json:"distanceKm,omitempty"`
	DurationMinutes int        `json:"durationMinutes,omitempty"`
	Error           string     `json:"error,omitempty"`
}

type AutocompleteResponse struct {
	Success     bool                     `json:"success"`
	Suggestions []AutocompleteSuggestion `json:"suggestions,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

type MetadataResponse struct {
	Success bool                `json:"success"`
	Version string              `json:"version,omitempty"`
	Options map[string][]string `json:"options,omitempty"`
	Error   string              `json:"error,omitempty"`
}
