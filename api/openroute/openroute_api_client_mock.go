package openroute

import (
	"math"

	"dayout-server/models"
)

// Average road speed assumed by the mock, km/h per profile.
var mockProfileSpeeds = map[string]float64{
	"driving-car":      40,
	"cycling-electric": 18,
	"foot-walking":     5,
}

// OpenRouteApiClientMock synthesizes deterministic matrix/directions
// responses from great-circle distances, so the dev environment and tests
// work without the real provider.
type OpenRouteApiClientMock struct {
}

// NewOpenRouteApiClientMock creates a new instance of OpenRouteApiClientMock
func NewOpenRouteApiClientMock() *OpenRouteApiClientMock {
	return &OpenRouteApiClientMock{}
}

func (c *OpenRouteApiClientMock) SetCredentials(apiKey string) {}

func (c *OpenRouteApiClientMock) Matrix(locations []models.Location, profile string, sources, destinations []int) (*models.MatrixResponse, error) {
	if sources == nil {
		sources = allIndices(len(locations))
	}
	if destinations == nil {
		destinations = allIndices(len(locations))
	}

	speed := mockProfileSpeeds[profile]
	if speed == 0 {
		speed = mockProfileSpeeds["driving-car"]
	}

	distances := make([][]float64, len(sources))
	durations := make([][]float64, len(sources))
	for i, s := range sources {
		distances[i] = make([]float64, len(destinations))
		durations[i] = make([]float64, len(destinations))
		for j, d := range destinations {
			meters := haversineMeters(locations[s], locations[d])
			distances[i][j] = meters
			durations[i][j] = meters / (speed * 1000 / 3600)
		}
	}

	return &models.MatrixResponse{Distances: distances, Durations: durations}, nil
}

func (c *OpenRouteApiClientMock) Directions(locations []models.Location, profile string) (*models.DirectionsResponse, error) {
	speed := mockProfileSpeeds[profile]
	if speed == 0 {
		speed = mockProfileSpeeds["driving-car"]
	}

	var response models.DirectionsResponse
	var feature models.DirectionsFeature
	total := 0.0
	for i, loc := range locations {
		feature.Geometry.Coordinates = append(feature.Geometry.Coordinates, loc.ToLngLat())
		if i > 0 {
			total += haversineMeters(locations[i-1], loc)
		}
	}
	feature.Properties.Summary = models.RouteSummary{
		Distance: total,
		Duration: total / (speed * 1000 / 3600),
	}
	response.Features = append(response.Features, feature)
	return &response, nil
}

func (c *OpenRouteApiClientMock) Autocomplete(text string) (*models.GeocodeResponse, error) {
	var response models.GeocodeResponse
	var feature models.GeocodeFeature
	feature.Geometry.Coordinates = []float64{77.5946, 12.9716}
	feature.Properties.Label = text + " (mock)"
	feature.Properties.Name = text
	feature.Properties.Country = "India"
	response.Features = append(response.Features, feature)
	return &response, nil
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

const earthRadiusMeters = 6371000

// haversineMeters is the great-circle distance between two locations.
func haversineMeters(a, b models.Location) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}
