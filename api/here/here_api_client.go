package here

import (
	"context"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"np-server/api"
	"np-server/apperrors"
	"np-server/models/discover"
)

const DISCOVER_ENDPOINT = "/discover"

// HereApiClient embeds the common HTTPClient
type HereApiClient struct {
	*api.HTTPClient
	apiKey  string
	limiter *rate.Limiter
}

// NewHereApiClient creates a new instance of HereApiClient
func NewHereApiClient(httpClient *api.HTTPClient) *HereApiClient {
	return &HereApiClient{
		HTTPClient: httpClient,
	}
}

func (c *HereApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// SetRateLimit throttles Discover to perSecond calls. Zero or less removes the limit.
func (c *HereApiClient) SetRateLimit(perSecond float64) {
	if perSecond <= 0 {
		c.limiter = nil
		return
	}
	c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
}

// Discover searches for places matching query around (lat, lng).
func (c *HereApiClient) Discover(ctx context.Context, lat, lng float64, query string, limit int) (*discover.DiscoverResponse, error) {
	if c.apiKey == "" {
		return nil, apperrors.NewConfigurationError(SERVICE_NAME, "missing API key")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, apperrors.NewUpstreamFailure(SERVICE_NAME, err)
		}
	}

	params := url.Values{}
	params.Set("at", FormatAt(lat, lng))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("q", query)
	params.Set("apiKey", c.apiKey)

	var response discover.DiscoverResponse
	if err := c.Request(ctx, "GET", DISCOVER_ENDPOINT, params, nil, nil, &response); err != nil {
		return nil, apperrors.NewUpstreamFailure(SERVICE_NAME, err)
	}
	if err := response.Validate(); err != nil {
		return nil, apperrors.NewUpstreamFailure(SERVICE_NAME, err)
	}
	return &response, nil
}

// FormatAt renders the "at" parameter as "lat,lng" with the shortest exact decimal form.
func FormatAt(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}
