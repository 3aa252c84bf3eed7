package openai

import (
	"context"

	"np-server/apperrors"
	"np-server/config"
	"np-server/models/chat"
	"np-server/util"
)

// OpenAIApiClientMock answers every completion from a JSON fixture on disk.
type OpenAIApiClientMock struct {
	responsePath string
}

// NewOpenAIApiClientMock creates a new instance of OpenAIApiClientMock
func NewOpenAIApiClientMock() *OpenAIApiClientMock {
	return &OpenAIApiClientMock{
		responsePath: config.GetResourcePath(config.CHAT_COMPLETION_RESPONSE_RESOURCE),
	}
}

func (c *OpenAIApiClientMock) SetCredentials(apiKey string) {}

func (c *OpenAIApiClientMock) CreateChatCompletion(ctx context.Context, request chat.ChatCompletionRequest) (*chat.ChatCompletionResponse, error) {
	response, err := util.ReadChatCompletionResponseFromJSON(c.responsePath)
	if err != nil {
		return nil, err
	}
	if err := response.Validate(); err != nil {
		return nil, apperrors.NewUpstreamFailure(SERVICE_NAME, err)
	}
	return response, nil
}
