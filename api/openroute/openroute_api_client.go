package openroute

import (
	"net/url"
	"strconv"

	"dayout-server/api"
	"dayout-server/config"
	"dayout-server/models"
)

// OpenRouteApiClient embeds the common HTTPClient
type OpenRouteApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewOpenRouteApiClient creates a new instance of OpenRouteApiClient
func NewOpenRouteApiClient(httpClient *api.HTTPClient) *OpenRouteApiClient {
	return &OpenRouteApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials sets the provider API key sent on every request.
func (c *OpenRouteApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

func (c *OpenRouteApiClient) headers() map[string]string {
	return map[string]string{
		"Accept":        "application/json, application/geo+json",
		"Authorization": c.apiKey,
	}
}

// Matrix requests pairwise distances/durations for the given locations.
// Locations are converted to the provider's [lng,lat] order here; nil
// sources/destinations means the full N×N matrix.
func (c *OpenRouteApiClient) Matrix(locations []models.Location, profile string, sources, destinations []int) (*models.MatrixResponse, error) {
	body := models.MatrixRequest{
		Locations:    models.LocationsToLngLat(locations),
		Metrics:      []string{"distance", "duration"},
		Sources:      sources,
		Destinations: destinations,
	}

	var response models.MatrixResponse
	err := c.Request("POST", "/v2/matrix/"+profile, c.headers(), body, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Directions requests one GeoJSON route across all waypoints in order.
func (c *OpenRouteApiClient) Directions(locations []models.Location, profile string) (*models.DirectionsResponse, error) {
	body := models.DirectionsRequest{
		Coordinates: models.LocationsToLngLat(locations),
	}

	var response models.DirectionsResponse
	err := c.Request("POST", "/v2/directions/"+profile+"/geojson", c.headers(), body, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Autocomplete requests place suggestions for a partial text query.
func (c *OpenRouteApiClient) Autocomplete(text string) (*models.GeocodeResponse, error) {
	q := url.Values{}
	q.Set("text", text)
	q.Set("size", strconv.Itoa(config.AUTOCOMPLETE_SUGGESTION_LIMIT))
	q.Set("boundary.country", config.AUTOCOMPLETE_COUNTRY)

	var response models.GeocodeResponse
	err := c.Request("GET", "/geocode/autocomplete?"+q.Encode(), c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
