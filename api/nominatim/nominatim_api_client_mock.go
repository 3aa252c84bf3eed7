package nominatim

import (
	"context"

	"np-server/config"
	"np-server/models/geocoding"
	"np-server/util"
)

// NominatimApiClientMock answers every search from a JSON fixture on disk.
type NominatimApiClientMock struct {
	responsePath string
}

// NewNominatimApiClientMock creates a new instance of NominatimApiClientMock
func NewNominatimApiClientMock() *NominatimApiClientMock {
	return &NominatimApiClientMock{
		responsePath: config.GetResourcePath(config.GEOCODE_RESPONSE_RESOURCE),
	}
}

func (c *NominatimApiClientMock) Search(ctx context.Context, address string, limit int) ([]geocoding.NominatimResult, error) {
	results, err := util.ReadNominatimResultsFromJSON(c.responsePath)
	if err != nil {
		return nil, err
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
