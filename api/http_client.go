// api/http_client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"np-server/metrics"
)

const maxErrorBodyBytes = 512

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	Service    string
	BaseURL    string
	HTTPClient *http.Client
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	msg := "unexpected status code: " + e.Status
	if len(e.Body) > 0 {
		body := e.Body
		if len(body) > maxErrorBodyBytes {
			body = body[:maxErrorBodyBytes]
		}
		msg += ": " + string(bytes.TrimSpace(body))
	}
	return msg
}

// ObserveUpstream records one outbound call to service that started at start.
func ObserveUpstream(service string, start time.Time, failed bool) {
	outcome := metrics.OUTCOME_SUCCESS
	if failed {
		outcome = metrics.OUTCOME_ERROR
	}
	metrics.UpstreamRequests.WithLabelValues(service, outcome).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
}

// NewHTTPClient creates a new instance of HTTPClient. service labels metrics.
func NewHTTPClient(service, baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		Service: service,
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Request makes an HTTP request to the API and decodes the JSON response into response.
func (c *HTTPClient) Request(
	ctx context.Context,
	method, endpoint string,
	query url.Values,
	headers map[string]string,
	body interface{},
	response interface{},
) (err error) {
	start := time.Now()
	defer func() { ObserveUpstream(c.Service, start, err != nil) }()

	var requestBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		requestBody = bytes.NewReader(jsonBody)
	}

	u := c.BaseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, requestBody)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		// The query may carry credentials, keep only the endpoint.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = c.BaseURL + endpoint
		}
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &StatusError{StatusCode: res.StatusCode, Status: res.Status, Body: resBody}
	}

	if response != nil {
		if err := json.Unmarshal(resBody, response); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
