package here

import (
	"context"

	"np-server/models/discover"
)

const SERVICE_NAME = "here"

// HereAPI defines the interface for interacting with the HERE Discover API
type HereAPI interface {
	Discover(ctx context.Context, lat, lng float64, query string, limit int) (*discover.DiscoverResponse, error)
	SetCredentials(apiKey string)
}
