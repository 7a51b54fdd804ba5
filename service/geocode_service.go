package services

import (
	"fmt"

	"dayout-server/api/openroute"
	"dayout-server/config"
	"dayout-server/models"
)

// GeocodeService wraps the provider's place autocomplete and normalizes its
// swapped [lng,lat] coordinates back to (lat,lng) suggestions.
type GeocodeService struct {
	orsApi openroute.OpenRouteAPI
}

func NewGeocodeService(orsApi openroute.OpenRouteAPI) *GeocodeService {
	return &GeocodeService{orsApi: orsApi}
}

// Autocomplete returns ranked place suggestions for a partial query.
func (gs *GeocodeService) Autocomplete(text string) ([]models.AutocompleteSuggestion, error) {
	if len(text) < config.AUTOCOMPLETE_MIN_QUERY_LEN {
		return nil, fmt.Errorf("query must be at least %d characters", config.AUTOCOMPLETE_MIN_QUERY_LEN)
	}

	response, err := gs.orsApi.Autocomplete(text)
	if err != nil {
		return nil, err
	}

	suggestions := make([]models.AutocompleteSuggestion, 0, len(response.Features))
	for _, feature := range response.Features {
		if len(feature.Geometry.Coordinates) < 2 {
			continue
		}
		name := feature.Properties.Name
		if name == "" {
			name = feature.Properties.Label
		}
		suggestions = append(suggestions, models.AutocompleteSuggestion{
			Label:    feature.Properties.Label,
			Name:     name,
			Lat:      feature.Geometry.Coordinates[1],
			Lng:      feature.Geometry.Coordinates[0],
			Locality: feature.Properties.Locality,
			Region:   feature.Properties.Region,
			Country:  feature.Properties.Country,
		})
	}
	return suggestions, nil
}
