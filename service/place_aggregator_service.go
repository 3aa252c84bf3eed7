package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"np-server/api/here"
	"np-server/apperrors"
	"np-server/metrics"
	"np-server/models"
	"np-server/models/discover"
)

// PlaceAggregatorService searches every configured category around a coordinate
// and keeps the places inside the near threshold.
type PlaceAggregatorService struct {
	hereApi     here.HereAPI
	categories  []models.Category
	resultLimit int
	concurrency int
	logger      *zap.Logger
}

// NewPlaceAggregatorService constructs a new PlaceAggregatorService. concurrency
// below 1 is treated as 1, which searches categories one after another.
func NewPlaceAggregatorService(
	hereApi here.HereAPI,
	categories []models.Category,
	resultLimit int,
	concurrency int,
	logger *zap.Logger,
) *PlaceAggregatorService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &PlaceAggregatorService{
		hereApi:     hereApi,
		categories:  categories,
		resultLimit: resultLimit,
		concurrency: concurrency,
		logger:      logger.Named("PlaceAggregatorService"),
	}
}

// Aggregate returns one entry per configured category, in configuration order.
// The first failing search cancels the rest and no partial result is returned.
func (s *PlaceAggregatorService) Aggregate(ctx context.Context, origin models.Coordinate) (models.PlacesByCategory, error) {
	s.logger.Debug("Aggregating nearby places",
		zap.Float64("lat", origin.Lat),
		zap.Float64("lng", origin.Lng),
		zap.Int("categories", len(s.categories)),
		zap.Int("concurrency", s.concurrency),
	)

	results := make(models.PlacesByCategory, len(s.categories))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, category := range s.categories {
		i, category := i, category
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			places, err := s.searchCategory(gctx, origin, category)
			if err != nil {
				return fmt.Errorf("search %s: %w", category.Name, err)
			}
			results[i] = models.CategoryPlaces{Category: category, Places: places}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("Aggregation failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Aggregated nearby places",
		zap.Float64("lat", origin.Lat),
		zap.Float64("lng", origin.Lng),
		zap.Int("places", results.Count()),
	)
	return results, nil
}

func (s *PlaceAggregatorService) searchCategory(ctx context.Context, origin models.Coordinate, category models.Category) ([]models.Place, error) {
	resp, err := s.hereApi.Discover(ctx, origin.Lat, origin.Lng, category.Query, s.resultLimit)
	if err != nil {
		return nil, err
	}

	items := resp.Items
	if len(items) > s.resultLimit {
		items = items[:s.resultLimit]
	}

	places := make([]models.Place, 0, len(items))
	for _, item := range items {
		place, err := toPlace(origin, item)
		if err != nil {
			return nil, err
		}
		km, err := place.DistanceKm()
		if err != nil {
			return nil, err
		}
		if !IsNearKm(km) {
			continue
		}
		places = append(places, place)
	}

	s.logger.Debug("Searched category",
		zap.String("category", category.Name),
		zap.Int("returned", len(items)),
		zap.Int("kept", len(places)),
	)
	metrics.PlacesReturned.WithLabelValues(category.Name).Observe(float64(len(places)))
	return places, nil
}

func toPlace(origin models.Coordinate, item discover.DiscoverItem) (models.Place, error) {
	if err := item.Validate(); err != nil {
		return models.Place{}, apperrors.NewUpstreamFailure(here.SERVICE_NAME, fmt.Errorf("malformed discover item: %w", err))
	}
	pos := models.Coordinate{Lat: *item.Position.Lat, Lng: *item.Position.Lng}
	return models.Place{
		Name:     *item.Title,
		Address:  *item.Address.Label,
		Location: [2]float64{pos.Lat, pos.Lng},
		Distance: FormatDistanceKm(GeodesicDistanceKm(origin, pos)),
	}, nil
}
