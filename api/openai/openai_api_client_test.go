package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"np-server/apperrors"
	"np-server/models/chat"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenAIApiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewOpenAIApiClient(srv.URL, time.Second)
	client.SetCredentials("sk-test")
	return client
}

func TestCreateChatCompletion(t *testing.T) {
	var received chat.ChatCompletionRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST; got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected path /chat/completions; got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q; want Bearer sk-test", got)
		}
		b, _ := io.ReadAll(r.Body)
		json.Unmarshal(b, &received)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-1","model":"gpt-4o","choices":[{"index":0,"message":{"role":"assistant","content":"1. **Banks:** (10/10)"},"finish_reason":"stop"}]}`))
	})

	request := chat.ChatCompletionRequest{
		Model: "gpt-4o",
		Messages: []chat.Message{
			{Role: chat.ROLE_SYSTEM, Content: "system"},
			{Role: chat.ROLE_USER, Content: "user"},
		},
	}
	got, err := client.CreateChatCompletion(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, request, received)
	require.Len(t, got.Choices, 1)
	assert.Equal(t, "1. **Banks:** (10/10)", got.Choices[0].Message.Content)
}

func TestCreateChatCompletion_NoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"chatcmpl-1","choices":[]}`))
	})

	_, err := client.CreateChatCompletion(context.Background(), chat.ChatCompletionRequest{Model: "gpt-4o"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUpstreamFailure))
}

func TestCreateChatCompletion_ErrorMessageFromBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
	})

	_, err := client.CreateChatCompletion(context.Background(), chat.ChatCompletionRequest{Model: "gpt-4o"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUpstreamFailure))
	assert.Contains(t, err.Error(), "unexpected status code: 401 Unauthorized")
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestCreateChatCompletion_MissingAPIKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent without an API key")
	})
	client.SetCredentials("")

	_, err := client.CreateChatCompletion(context.Background(), chat.ChatCompletionRequest{Model: "gpt-4o"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConfigurationError))
}

func TestOpenAIApiClientMock_CreateChatCompletion(t *testing.T) {
	client := NewOpenAIApiClientMock()

	got, err := client.CreateChatCompletion(context.Background(), chat.ChatCompletionRequest{})

	require.NoError(t, err)
	require.NotEmpty(t, got.Choices)
	assert.NotEmpty(t, got.Choices[0].Message.Content)
}

func TestCreateChatCompletion_ServerErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"The server had an error","type":"server_error"}}`))
	})

	_, err := client.CreateChatCompletion(context.Background(), chat.ChatCompletionRequest{Model: "gpt-4o"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUpstreamFailure))
	assert.Equal(t, int32(1), calls.Load())
}

func TestOpenAIApiClientMock_FixtureWithoutChoices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"x","choices":[]}`), 0644))
	client := &OpenAIApiClientMock{responsePath: path}

	_, err := client.CreateChatCompletion(context.Background(), chat.ChatCompletionRequest{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUpstreamFailure))
}
