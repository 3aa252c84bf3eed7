package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	openaigo "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"np-server/api"
	"np-server/apperrors"
	"np-server/models/chat"
)

// OpenAIApiClient wraps the official SDK client. It is rebuilt on SetCredentials.
type OpenAIApiClient struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	client     openaigo.Client
}

// NewOpenAIApiClient creates a new instance of OpenAIApiClient
func NewOpenAIApiClient(baseURL string, timeout time.Duration) *OpenAIApiClient {
	c := &OpenAIApiClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
	c.SetCredentials("")
	return c
}

func (c *OpenAIApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
	c.client = openaigo.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(c.baseURL),
		option.WithHTTPClient(c.httpClient),
		// one attempt per request, a failure fails the whole review
		option.WithMaxRetries(0),
		option.WithMiddleware(instrument),
	)
}

// CreateChatCompletion sends a single chat completion request.
func (c *OpenAIApiClient) CreateChatCompletion(ctx context.Context, request chat.ChatCompletionRequest) (*chat.ChatCompletionResponse, error) {
	if c.apiKey == "" {
		return nil, apperrors.NewConfigurationError(SERVICE_NAME, "missing API key")
	}

	completion, err := c.client.Chat.Completions.New(ctx, toParams(request))
	if err != nil {
		return nil, apperrors.NewUpstreamFailure(SERVICE_NAME, describe(err))
	}

	response := fromCompletion(completion)
	if err := response.Validate(); err != nil {
		return nil, apperrors.NewUpstreamFailure(SERVICE_NAME, err)
	}
	return response, nil
}

func instrument(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
	start := time.Now()
	res, err := next(req)
	api.ObserveUpstream(SERVICE_NAME, start, err != nil || res.StatusCode >= 300)
	return res, err
}

func toParams(request chat.ChatCompletionRequest) openaigo.ChatCompletionNewParams {
	messages := make([]openaigo.ChatCompletionMessageParamUnion, 0, len(request.Messages))
	for _, m := range request.Messages {
		switch m.Role {
		case chat.ROLE_SYSTEM:
			messages = append(messages, openaigo.SystemMessage(m.Content))
		case chat.ROLE_ASSISTANT:
			messages = append(messages, openaigo.AssistantMessage(m.Content))
		default:
			messages = append(messages, openaigo.UserMessage(m.Content))
		}
	}
	return openaigo.ChatCompletionNewParams{
		Model:    openaigo.ChatModel(request.Model),
		Messages: messages,
	}
}

func fromCompletion(completion *openaigo.ChatCompletion) *chat.ChatCompletionResponse {
	choices := make([]chat.Choice, 0, len(completion.Choices))
	for _, choice := range completion.Choices {
		choices = append(choices, chat.Choice{
			Index: int(choice.Index),
			Message: chat.Message{
				Role:    string(choice.Message.Role),
				Content: choice.Message.Content,
			},
			FinishReason: string(choice.FinishReason),
		})
	}
	return &chat.ChatCompletionResponse{
		ID:      completion.ID,
		Object:  string(completion.Object),
		Model:   completion.Model,
		Choices: choices,
		Usage: chat.Usage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}
}

// describe reduces an SDK API error to its status and OpenAI's error message.
func describe(err error) error {
	var apiErr *openaigo.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	message := apiErr.Message
	if message == "" && apiErr.Response != nil && apiErr.Response.Body != nil {
		var body chat.ErrorResponse
		if b, readErr := io.ReadAll(apiErr.Response.Body); readErr == nil && json.Unmarshal(b, &body) == nil {
			message = body.Error.Message
		}
	}

	status := fmt.Sprintf("%d %s", apiErr.StatusCode, http.StatusText(apiErr.StatusCode))
	if message == "" {
		return fmt.Errorf("unexpected status code: %s", status)
	}
	return fmt.Errorf("unexpected status code: %s: %s", status, message)
}
