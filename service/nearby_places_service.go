package services

import (
	"context"

	"np-server/models"
)

// PlaceAggregator is the place search half of a nearby places request.
type PlaceAggregator interface {
	Aggregate(ctx context.Context, origin models.Coordinate) (models.PlacesByCategory, error)
}

// SummaryGenerator is the review half of a nearby places request.
type SummaryGenerator interface {
	Summarize(ctx context.Context, places models.PlacesByCategory) (string, error)
}

// NearbyPlacesService runs aggregation to completion, then summary generation,
// and joins both into the response.
type NearbyPlacesService struct {
	aggregator PlaceAggregator
	generator  SummaryGenerator
}

func NewNearbyPlacesService(aggregator PlaceAggregator, generator SummaryGenerator) *NearbyPlacesService {
	return &NearbyPlacesService{
		aggregator: aggregator,
		generator:  generator,
	}
}

func (s *NearbyPlacesService) GetNearbyPlaces(ctx context.Context, origin models.Coordinate) (*models.NearbyPlacesResponse, error) {
	places, err := s.aggregator.Aggregate(ctx, origin)
	if err != nil {
		return nil, err
	}

	review, err := s.generator.Summarize(ctx, places)
	if err != nil {
		return nil, err
	}

	return models.NewNearbyPlacesResponse(places, review), nil
}

// GetPlacesByCategory runs only the aggregation step.
func (s *NearbyPlacesService) GetPlacesByCategory(ctx context.Context, origin models.Coordinate) (models.PlacesByCategory, error) {
	return s.aggregator.Aggregate(ctx, origin)
}
