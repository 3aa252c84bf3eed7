package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"np-server/models"
	"np-server/models/chat"
	"np-server/models/discover"
	"np-server/models/geocoding"
)

type mockHereAPI struct {
	mock.Mock
}

func (m *mockHereAPI) Discover(ctx context.Context, lat, lng float64, query string, limit int) (*discover.DiscoverResponse, error) {
	args := m.Called(ctx, lat, lng, query, limit)
	resp, _ := args.Get(0).(*discover.DiscoverResponse)
	return resp, args.Error(1)
}

func (m *mockHereAPI) SetCredentials(apiKey string) {}

type mockOpenAIAPI struct {
	mock.Mock
}

func (m *mockOpenAIAPI) CreateChatCompletion(ctx context.Context, request chat.ChatCompletionRequest) (*chat.ChatCompletionResponse, error) {
	args := m.Called(ctx, request)
	resp, _ := args.Get(0).(*chat.ChatCompletionResponse)
	return resp, args.Error(1)
}

func (m *mockOpenAIAPI) SetCredentials(apiKey string) {}

type mockNominatimAPI struct {
	mock.Mock
}

func (m *mockNominatimAPI) Search(ctx context.Context, address string, limit int) ([]geocoding.NominatimResult, error) {
	args := m.Called(ctx, address, limit)
	results, _ := args.Get(0).([]geocoding.NominatimResult)
	return results, args.Error(1)
}

type mockAggregator struct {
	mock.Mock
}

func (m *mockAggregator) Aggregate(ctx context.Context, origin models.Coordinate) (models.PlacesByCategory, error) {
	args := m.Called(ctx, origin)
	places, _ := args.Get(0).(models.PlacesByCategory)
	return places, args.Error(1)
}

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Summarize(ctx context.Context, places models.PlacesByCategory) (string, error) {
	args := m.Called(ctx, places)
	return args.String(0), args.Error(1)
}

func item(title, label string, lat, lng float64) discover.DiscoverItem {
	return discover.DiscoverItem{
		Title:    &title,
		Address:  &discover.Address{Label: &label},
		Position: &discover.Position{Lat: &lat, Lng: &lng},
	}
}

func discoverResponse(items ...discover.DiscoverItem) *discover.DiscoverResponse {
	if items == nil {
		items = []discover.DiscoverItem{}
	}
	return &discover.DiscoverResponse{Items: items}
}
