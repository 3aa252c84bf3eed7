package services

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"np-server/api/nominatim"
	"np-server/apperrors"
	"np-server/models"
)

type GeocodingService struct {
	nominatimApi nominatim.NominatimAPI
	logger       *zap.Logger
}

func NewGeocodingService(nominatimApi nominatim.NominatimAPI, logger *zap.Logger) *GeocodingService {
	return &GeocodingService{
		nominatimApi: nominatimApi,
		logger:       logger.Named("GeocodingService"),
	}
}

// Geocode resolves a free-text address to its best match. It returns nil, nil when nothing matched.
func (s *GeocodingService) Geocode(ctx context.Context, address string) (*models.Coordinate, error) {
	results, err := s.nominatimApi.Search(ctx, address, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		s.logger.Debug("No geocoding match", zap.String("address", address))
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure(nominatim.SERVICE_NAME, fmt.Errorf("invalid lat %q: %w", results[0].Lat, err))
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure(nominatim.SERVICE_NAME, fmt.Errorf("invalid lon %q: %w", results[0].Lon, err))
	}

	return &models.Coordinate{Lat: lat, Lng: lng}, nil
}
