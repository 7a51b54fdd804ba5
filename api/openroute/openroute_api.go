package openroute

import (
	"dayout-server/models"
)

// OpenRouteAPI defines the interface for interacting with the OpenRouteService API
type OpenRouteAPI interface {
	Matrix(locations []models.Location, profile string, sources, destinations []int) (*models.MatrixResponse, error)
	Directions(locations []models.Location, profile string) (*models.DirectionsResponse, error)
	Autocomplete(text string) (*models.GeocodeResponse, error)
	SetCredentials(apiKey string)
}
