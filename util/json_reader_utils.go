package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"dayout-server/models"
)

// ReadChatCompletionFromJSON loads a canned ChatCompletionResponse from disk.
func ReadChatCompletionFromJSON(filePath string) (*models.ChatCompletionResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.ChatCompletionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ChatCompletionResponse: %w", err)
	}
	return &resp, nil
}

// ReadVenuesCatalogFromJSON loads the seed venue catalog from disk.
func ReadVenuesCatalogFromJSON(filePath string) ([]models.Venue, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var venues []models.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venues catalog: %w", err)
	}
	return venues, nil
}
