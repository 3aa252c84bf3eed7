package here

import (
	"context"

	"np-server/config"
	"np-server/models/discover"
	"np-server/util"
)

// HereApiClientMock answers every search from a JSON fixture on disk.
type HereApiClientMock struct {
	responsePath string
}

// NewHereApiClientMock creates a new instance of HereApiClientMock
func NewHereApiClientMock() *HereApiClientMock {
	return &HereApiClientMock{
		responsePath: config.GetResourcePath(config.DISCOVER_RESPONSE_RESOURCE),
	}
}

func (c *HereApiClientMock) SetCredentials(apiKey string) {}

// Discover returns the fixture truncated to limit, regardless of coordinate and query.
func (c *HereApiClientMock) Discover(ctx context.Context, lat, lng float64, query string, limit int) (*discover.DiscoverResponse, error) {
	response, err := util.ReadDiscoverResponseFromJSON(c.responsePath)
	if err != nil {
		return nil, err
	}
	if len(response.Items) > limit {
		response.Items = response.Items[:limit]
	}
	return response, nil
}
