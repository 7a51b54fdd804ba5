package models

import "fmt"

// Stop categories. These are the plural names used on the wire by the
// planning UI; PromptCompiler derives the singular form for directives.
const (
	CATEGORY_DININGS    = "dinings"
	CATEGORY_MOVIES     = "movies"
	CATEGORY_EVENTS     = "events"
	CATEGORY_ACTIVITIES = "activities"
	CATEGORY_PLAYS      = "plays"
)

// FilterSpec holds the per-category venue filters a user picked. Only keys
// whitelisted for the slot's category are ever read; everything else is
// ignored. Nil pointers / empty slices mean "not set".
type FilterSpec struct {
	// Type-specific
	Type      []string `json:"type,omitempty"`      // dinings, events, activities, plays
	Cuisines  []string `json:"cuisines,omitempty"`  // dinings
	Alcohol   *bool    `json:"alcohol,omitempty"`   // dinings
	Genre     []string `json:"genre,omitempty"`     // movies
	Language  []string `json:"language,omitempty"`  // movies
	Format    []string `json:"format,omitempty"`    // movies
	Cast      []string `json:"cast,omitempty"`      // movies
	Venue     []string `json:"venue,omitempty"`     // events, activities, plays
	Intensity []string `json:"intensity,omitempty"` // activities, plays
	Cafe      *bool    `json:"cafe,omitempty"`      // plays

	// Common across all categories
	Wifi           *bool    `json:"wifi,omitempty"`
	Washroom       *bool    `json:"washroom,omitempty"`
	Wheelchair     *bool    `json:"wheelchair,omitempty"`
	Parking        *bool    `json:"parking,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
	CrowdTolerance []string `json:"crowdTolerance,omitempty"`
}

// TypeSlot is one position in a requested itinerary: a category plus either
// a filter spec (venue still to be chosen) or a fixed, already-resolved
// venue ID. Exactly one of the two must be populated.
type TypeSlot struct {
	Category string      `json:"category"`
	Filters  *FilterSpec `json:"filters,omitempty"`
	VenueID  string      `json:"venueId,omitempty"`
}

// Validate enforces the one-of shape.
func (s TypeSlot) Validate() error {
	switch s.Category {
	case CATEGORY_DININGS, CATEGORY_MOVIES, CATEGORY_EVENTS, CATEGORY_ACTIVITIES, CATEGORY_PLAYS:
	default:
		return fmt.Errorf("unknown slot category %q", s.Category)
	}
	if s.Filters == nil && s.VenueID == "" {
		return fmt.Errorf("slot %q has neither filters nor a fixed venue", s.Category)
	}
	if s.Filters != nil && s.VenueID != "" {
		return fmt.Errorf("slot %q has both filters and a fixed venue", s.Category)
	}
	return nil
}

// Fixed reports whether the slot pins one specific venue.
func (s TypeSlot) Fixed() bool {
	return s.VenueID != ""
}

// Constraints is the full user request driving generation and scoring.
type Constraints struct {
	Budget          int        `json:"budget"`
	NumberOfPeople  int        `json:"numberOfPeople"`
	TravelTolerance []string   `json:"travelTolerance,omitempty"`
	ExtraInfo       string     `json:"extraInfo,omitempty"`
	StartLocation   Location   `json:"startLocation"`
	PreferredTypes  []TypeSlot `json:"preferredTypes"`
}

// Validate checks the structural invariants of a planning request.
func (c Constraints) Validate() error {
	if c.Budget <= 0 {
		return fmt.Errorf("budget must be positive, got %d", c.Budget)
	}
	if c.NumberOfPeople < 1 {
		return fmt.Errorf("numberOfPeople must be at least 1, got %d", c.NumberOfPeople)
	}
	if err := c.StartLocation.Validate(); err != nil {
		return fmt.Errorf("start location: %w", err)
	}
	if len(c.PreferredTypes) == 0 {
		return fmt.Errorf("at least one preferred type is required")
	}
	for i, slot := range c.PreferredTypes {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("slot #%d: %w", i+1, err)
		}
	}
	return nil
}
