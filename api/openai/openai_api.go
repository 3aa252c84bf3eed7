package openai

import (
	"context"

	"np-server/models/chat"
)

const SERVICE_NAME = "openai"

// OpenAIAPI defines the interface for the chat completions endpoint.
// A nil error guarantees at least one choice.
type OpenAIAPI interface {
	CreateChatCompletion(ctx context.Context, request chat.ChatCompletionRequest) (*chat.ChatCompletionResponse, error)
	SetCredentials(apiKey string)
}
