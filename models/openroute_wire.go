package models

// Wire types for the OpenRouteService API. Coordinates on this boundary are
// always [lng, lat] pairs.

// MatrixRequest is the POST body for /v2/matrix/{profile}.
type MatrixRequest struct {
	Locations    [][]float64 `json:"locations"`
	Metrics      []string    `json:"metrics"`
	Sources      []int       `json:"sources,omitempty"`
	Destinations []int       `json:"destinations,omitempty"`
}

// MatrixResponse is the provider's matrix payload.
type MatrixResponse struct {
	Distances [][]float64            `json:"distances"`
	Durations [][]float64            `json:"durations"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// DirectionsRequest is the POST body for /v2/directions/{profile}/geojson.
type DirectionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

// DirectionsResponse is the GeoJSON FeatureCollection returned by the
// directions endpoint. Only the fields the route service reads are mapped.
type DirectionsResponse struct {
	Features []DirectionsFeature `json:"features"`
}

type DirectionsFeature struct {
	Geometry struct {
		Coordinates [][]float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Summary RouteSummary `json:"summary"`
	} `json:"properties"`
}

// RouteSummary is the aggregate distance (meters) / duration (seconds) of a
// directions feature.
type RouteSummary struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

// GeocodeResponse is the autocomplete GeoJSON payload.
type GeocodeResponse struct {
	Features []GeocodeFeature `json:"features"`
}

type GeocodeFeature struct {
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Label    string `json:"label"`
		Name     string `json:"name"`
		Locality string `json:"locality"`
		Region   string `json:"region"`
		Country  string `json:"country"`
	} `json:"properties"`
}
