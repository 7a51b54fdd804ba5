package groq

import (
	"dayout-server/models"
)

// GroqAPI defines the interface for interacting with the Groq chat API
type GroqAPI interface {
	ChatCompletion(request models.ChatCompletionRequest) (*models.ChatCompletionResponse, error)
	SetCredentials(apiKey string)
}
