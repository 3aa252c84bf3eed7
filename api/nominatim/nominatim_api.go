package nominatim

import (
	"context"

	"np-server/models/geocoding"
)

const SERVICE_NAME = "nominatim"

// NominatimAPI defines the interface for free-text address search
type NominatimAPI interface {
	Search(ctx context.Context, address string, limit int) ([]geocoding.NominatimResult, error)
}
