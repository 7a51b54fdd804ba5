package models

// Venue is a resolved stop. DistanceKm and TravelTimeMinutes are directional:
// they describe the leg from the previous stop in the itinerary, so any
// reordering invalidates them and requires a fresh matrix computation.
type Venue struct {
	VenueID            string   `json:"venueId"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Location           Location `json:"location"`
	PricePerPerson     float64  `json:"pricePerPerson"`
	Duration           int      `json:"duration"` // minutes
	AvailableTimeStart string   `json:"availableTimeStart"`
	AvailableTimeEnd   string   `json:"availableTimeEnd"`

	DistanceKm        float64 `json:"distanceKm"`
	TravelTimeMinutes int     `json:"travelTimeMinutes"`

	// Amenities
	Wifi       bool    `json:"wifi"`
	Washroom   bool    `json:"washroom"`
	Wheelchair bool    `json:"wheelchair"`
	Parking    bool    `json:"parking"`
	Rating     float64 `json:"rating"`

	// Type-specific attributes; only the ones matching Category are set.
	Type      []string `json:"type,omitempty"`      // dinings, events, activities, plays
	Cuisines  []string `json:"cuisines,omitempty"`  // dinings
	Alcohol   bool     `json:"alcohol,omitempty"`   // dinings
	Genre     []string `json:"genre,omitempty"`     // movies
	Language  []string `json:"language,omitempty"`  // movies
	Format    []string `json:"format,omitempty"`    // movies
	Cast      []string `json:"cast,omitempty"`      // movies
	VenueKind string   `json:"venue,omitempty"`     // indoor/outdoor/both
	Intensity string   `json:"intensity,omitempty"` // activities, plays
	Cafe      bool     `json:"cafe,omitempty"`      // plays
	Crowd     string   `json:"crowd,omitempty"`     // low/medium/high
}
