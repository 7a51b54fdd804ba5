package groq

import (
	"fmt"

	"dayout-server/config"
	"dayout-server/models"
	"dayout-server/util"
)

var CHAT_COMPLETION_RESPONSE_PATH = config.GetResourcePath(config.CHAT_COMPLETION_RESOURCE)

// GroqApiClientMock embeds mocked logic for the groq api client
type GroqApiClientMock struct {
}

// NewGroqApiClientMock creates a new instance of GroqApiClientMock
func NewGroqApiClientMock() *GroqApiClientMock {
	return &GroqApiClientMock{}
}

func (c *GroqApiClientMock) SetCredentials(apiKey string) {}

// ChatCompletion returns a canned completion loaded from the resources dir.
func (c *GroqApiClientMock) ChatCompletion(request models.ChatCompletionRequest) (*models.ChatCompletionResponse, error) {
	response, err := util.ReadChatCompletionFromJSON(CHAT_COMPLETION_RESPONSE_PATH)
	if err != nil {
		fmt.Println("Could not read chat completion response from json")
		return nil, err
	}

	return response, nil
}
