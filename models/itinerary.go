package models

import "strings"

// Stop pairs the requested slot with the venue chosen for it.
type Stop struct {
	Slot  TypeSlot `json:"slot"`
	Venue Venue    `json:"venue"`
}

// Itinerary is an ordered sequence of stops. The generator creates it, the
// scorer consumes it without mutating, and the editing flow replaces stops
// before re-submission.
type Itinerary struct {
	Stops []Stop `json:"stops"`
}

// Locations returns the ordered stop locations.
func (it Itinerary) Locations() []Location {
	locs := make([]Location, len(it.Stops))
	for i, s := range it.Stops {
		locs[i] = s.Venue.Location
	}
	return locs
}

// Signature keys an itinerary by its ordered venue IDs. Order matters:
// distance fields are directional, so the same venues in a different order
// are a different itinerary.
func (it Itinerary) Signature() string {
	ids := make([]string, len(it.Stops))
	for i, s := range it.Stops {
		ids[i] = s.Venue.VenueID
	}
	return strings.Join(ids, "|")
}

// ScoreResult is the scorer's verdict for one itinerary.
type ScoreResult struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// RankedItinerary is one entry of a ranking pass result.
type RankedItinerary struct {
	Itinerary Itinerary `json:"itinerary"`
	Score     int       `json:"score"`
	Reasoning string    `json:"reasoning,omitempty"`
}
