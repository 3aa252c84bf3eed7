package nominatim

import (
	"context"
	"net/url"
	"strconv"

	"np-server/api"
	"np-server/apperrors"
	"np-server/models/geocoding"
)

const SEARCH_ENDPOINT = "/search"

// NominatimApiClient embeds the common HTTPClient. Nominatim's usage policy
// requires an identifying User-Agent on every request.
type NominatimApiClient struct {
	*api.HTTPClient
	userAgent string
}

// NewNominatimApiClient creates a new instance of NominatimApiClient
func NewNominatimApiClient(httpClient *api.HTTPClient, userAgent string) *NominatimApiClient {
	return &NominatimApiClient{
		HTTPClient: httpClient,
		userAgent:  userAgent,
	}
}

func (c *NominatimApiClient) Search(ctx context.Context, address string, limit int) ([]geocoding.NominatimResult, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))

	headers := map[string]string{"User-Agent": c.userAgent}

	var results []geocoding.NominatimResult
	if err := c.Request(ctx, "GET", SEARCH_ENDPOINT, params, headers, nil, &results); err != nil {
		return nil, apperrors.NewUpstreamFailure(SERVICE_NAME, err)
	}
	return results, nil
}
