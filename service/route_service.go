package services

import (
	"fmt"

	"dayout-server/api/openroute"
	"dayout-server/models"
)

// RouteService turns ordered stop locations into concrete distances,
// durations, and route geometry. Both operations are stateless and
// idempotent, and both keep units raw (meters/seconds): km-with-one-decimal
// and rounded-up minutes belong to the presentation boundary, not here.
//
// Unlike scoring, route failures are never absorbed: downstream arithmetic
// assumes a complete matrix, so callers get an explicit error instead of a
// partial result or fabricated zeros.
type RouteService struct {
	orsApi openroute.OpenRouteAPI
}

// NewRouteService constructs a RouteService over the routing provider.
func NewRouteService(orsApi openroute.OpenRouteAPI) *RouteService {
	return &RouteService{orsApi: orsApi}
}

func validateLocations(locations []models.Location) error {
	if len(locations) < 2 {
		return fmt.Errorf("%w, got %d", ErrNotEnoughLocations, len(locations))
	}
	for i, loc := range locations {
		if err := loc.Validate(); err != nil {
			return fmt.Errorf("location #%d: %w", i+1, err)
		}
	}
	return nil
}

// Matrix computes pairwise distances (meters) and durations (seconds). When
// sources/destinations are nil the full N×N matrix is returned. The profile
// is passed through verbatim; an unrecognized one is the provider's error.
func (rs *RouteService) Matrix(locations []models.Location, profile string, sources, destinations []int) (*models.RouteMatrix, error) {
	if err := validateLocations(locations); err != nil {
		return nil, err
	}

	response, err := rs.orsApi.Matrix(locations, profile, sources, destinations)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRouteUnavailable, err)
	}
	if len(response.Distances) == 0 || len(response.Durations) == 0 {
		return nil, fmt.Errorf("%w: matrix response missing distances or durations", ErrMalformedResponse)
	}

	return &models.RouteMatrix{
		Distances: response.Distances,
		Durations: response.Durations,
		Locations: locations,
	}, nil
}

// Geometry computes one route across all waypoints in the given order and
// returns the full polyline converted back to (lat,lng), plus aggregate
// distance/duration. A synthetic "return to start" waypoint appended by the
// caller passes through unchanged; itinerary semantics live upstream.
func (rs *RouteService) Geometry(orderedLocations []models.Location, profile string) (*models.RouteGeometry, error) {
	if err := validateLocations(orderedLocations); err != nil {
		return nil, err
	}

	response, err := rs.orsApi.Directions(orderedLocations, profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRouteUnavailable, err)
	}
	if len(response.Features) == 0 {
		return nil, fmt.Errorf("%w: directions response has no features", ErrMalformedResponse)
	}

	feature := response.Features[0]
	polyline := make([]models.Location, len(feature.Geometry.Coordinates))
	for i, pair := range feature.Geometry.Coordinates {
		if len(pair) < 2 {
			return nil, fmt.Errorf("%w: coordinate #%d is not a pair", ErrMalformedResponse, i)
		}
		polyline[i] = models.LocationFromLngLat(pair)
	}

	return &models.RouteGeometry{
		Polyline: polyline,
		Distance: feature.Properties.Summary.Distance,
		Duration: feature.Properties.Summary.Duration,
	}, nil
}
