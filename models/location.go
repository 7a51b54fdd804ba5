package models

import (
	"fmt"
	"math"
)

// Location is a (lat,lng) pair. The routing provider speaks [lng,lat]; use
// ToLngLat / LocationFromLngLat at that boundary so the rest of the code
// never has to remember the swapped order.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks that both coordinates are finite and in range.
func (l Location) Validate() error {
	if math.IsNaN(l.Lat) || math.IsInf(l.Lat, 0) || math.IsNaN(l.Lng) || math.IsInf(l.Lng, 0) {
		return fmt.Errorf("location coordinates must be finite: (%v, %v)", l.Lat, l.Lng)
	}
	if l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("latitude out of range: %v", l.Lat)
	}
	if l.Lng < -180 || l.Lng > 180 {
		return fmt.Errorf("longitude out of range: %v", l.Lng)
	}
	return nil
}

// ToLngLat converts to the provider's native [lng, lat] pair order.
func (l Location) ToLngLat() []float64 {
	return []float64{l.Lng, l.Lat}
}

// LocationFromLngLat converts a provider [lng, lat] pair back to a Location.
func LocationFromLngLat(pair []float64) Location {
	return Location{Lat: pair[1], Lng: pair[0]}
}

// LocationsToLngLat converts an ordered location list to provider pair order.
func LocationsToLngLat(locations []Location) [][]float64 {
	coords := make([][]float64, len(locations))
	for i, loc := range locations {
		coords[i] = loc.ToLngLat()
	}
	return coords
}
