package models

// RouteMatrix holds pairwise distances (meters) and durations (seconds) over
// an ordered location list. Values are raw provider output; rounding happens
// only at the presentation boundary. Not guaranteed symmetric.
type RouteMatrix struct {
	Distances [][]float64 `json:"distances"`
	Durations [][]float64 `json:"durations"`
	Locations []Location  `json:"locations"`
}

// RouteGeometry is the full path for one ordered waypoint sequence plus its
// aggregate distance (meters) and duration (seconds).
type RouteGeometry struct {
	Polyline []Location `json:"polyline"`
	Distance float64    `json:"distance"`
	Duration float64    `json:"duration"`
}

// AutocompleteSuggestion is one geocoder hit with coordinates already
// normalized back to (lat,lng).
type AutocompleteSuggestion struct {
	Label    string  `json:"label"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Locality string  `json:"locality,omitempty"`
	Region   string  `json:"region,omitempty"`
	Country  string  `json:"country,omitempty"`
}
