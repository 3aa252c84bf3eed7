package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Request_Success(t *testing.T) {
	// Mock server setup
	mockResponse := map[string]string{"message": "success"}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test-endpoint" {
			t.Errorf("Expected endpoint '/test-endpoint', got '%s'", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "bank" {
			t.Errorf("Expected query q=bank, got '%s'", got)
		}
		if got := r.Header.Get("X-Test"); got != "yes" {
			t.Errorf("Expected header X-Test=yes, got '%s'", got)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer mockServer.Close()

	// Test setup
	client := NewHTTPClient("test", mockServer.URL, time.Second)
	var response map[string]string

	// Act
	err := client.Request(context.Background(), "GET", "/test-endpoint",
		url.Values{"q": {"bank"}}, map[string]string{"X-Test": "yes"}, nil, &response)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "success", response["message"])
}

func TestHTTPClient_Request_SendsJSONBody(t *testing.T) {
	var received map[string]string
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		json.Unmarshal(b, &received)
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	client := NewHTTPClient("test", mockServer.URL, time.Second)
	err := client.Request(context.Background(), "POST", "/post", nil, nil, map[string]string{"key": "value"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "value", received["key"])
}

func TestHTTPClient_Request_Failure(t *testing.T) {
	// Mock server setup
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer mockServer.Close()

	// Test setup
	client := NewHTTPClient("test", mockServer.URL, time.Second)
	var response map[string]string

	// Act
	err := client.Request(context.Background(), "POST", "/test-endpoint", nil, nil, map[string]string{"key": "value"}, &response)

	// Assert
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, `unexpected status code: 400 Bad Request: {"error": "bad request"}`, err.Error())
}

func TestHTTPClient_Request_MalformedJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"invalid_json`))
	}))
	defer mockServer.Close()

	client := NewHTTPClient("test", mockServer.URL, time.Second)
	var response map[string]string

	err := client.Request(context.Background(), "GET", "/", nil, nil, nil, &response)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestHTTPClient_Request_Timeout(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	client := NewHTTPClient("test", mockServer.URL, 20*time.Millisecond)

	err := client.Request(context.Background(), "GET", "/", nil, nil, nil, nil)

	require.Error(t, err)
}

func TestHTTPClient_Request_TransportErrorOmitsQuery(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer mockServer.Close()

	client := NewHTTPClient("test", mockServer.URL, 20*time.Millisecond)

	err := client.Request(context.Background(), "GET", "/secure", url.Values{"apiKey": {"SUPERSECRET"}}, nil, nil, nil)

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SUPERSECRET")
	assert.NotContains(t, err.Error(), "apiKey")
	assert.Contains(t, err.Error(), mockServer.URL+"/secure")
}
