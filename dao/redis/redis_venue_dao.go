package redis

import (
	"encoding/json"
	"fmt"

	"dayout-server/db"
	"dayout-server/models"
)

const VENUES_GEO_KEY_V1 = "dayout_venues_geo_v1"
const VENUES_GEO_PLACE_MEMBER_FORMAT_V1 = "dayout_venues_geo_place_v1:%s"

// RedisVenueDAO is the geo-indexed venue catalog. Resolved venues are stored
// as geolocations with their full JSON alongside, so slot resolution can pull
// everything nearby in one radius query.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

// UpsertVenue stores the venue as a geolocation with the venue's JSON data.
func (dao *RedisVenueDAO) UpsertVenue(v models.Venue) error {
	ctx := dao.client.GetContext()
	venueKey := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, v.VenueID)
	return dao.client.AddLocationWithJSON(ctx, VENUES_GEO_KEY_V1, venueKey, v.Location.Lat, v.Location.Lng, v)
}

// GetNearbyVenues retrieves venues within a given radius (km) of a point.
func (dao *RedisVenueDAO) GetNearbyVenues(lat, lng, radiusKm float64) ([]models.Venue, error) {
	venuesJSON, err := dao.client.GetLocationsWithinRadius(VENUES_GEO_KEY_V1, lat, lng, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get venues: %v", err)
	}

	venues := make([]models.Venue, len(venuesJSON))
	for i, venueJSON := range venuesJSON {
		if err := json.Unmarshal([]byte(venueJSON), &venues[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON: %v", err)
		}
	}
	return venues, nil
}

// GetVenue retrieves one venue by its ID.
func (dao *RedisVenueDAO) GetVenue(venueID string) (*models.Venue, error) {
	key := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, venueID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue %s: %w", venueID, err)
	}
	var v models.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
	}
	return &v, nil
}
