package groq

import (
	"dayout-server/api"
	"dayout-server/models"
)

// GroqApiClient embeds the common HTTPClient
type GroqApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewGroqApiClient creates a new instance of GroqApiClient
func NewGroqApiClient(httpClient *api.HTTPClient) *GroqApiClient {
	return &GroqApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials sets the bearer token sent on every request.
func (c *GroqApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// ChatCompletion posts one chat request and decodes the completion.
func (c *GroqApiClient) ChatCompletion(request models.ChatCompletionRequest) (*models.ChatCompletionResponse, error) {
	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	var response models.ChatCompletionResponse
	err := c.Request("POST", "/chat/completions", headers, request, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
