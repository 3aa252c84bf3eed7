package di

import (
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"np-server/api"
	"np-server/api/here"
	"np-server/api/nominatim"
	"np-server/api/openai"
	"np-server/config"
	"np-server/server"
	"np-server/server/handlers"
	services "np-server/service"
)

// Container holds all application dependencies.
type Container struct {
	HereAPI                 here.HereAPI
	OpenAIAPI               openai.OpenAIAPI
	NominatimAPI            nominatim.NominatimAPI
	PlaceAggregatorService  *services.PlaceAggregatorService
	SummaryGeneratorService *services.SummaryGeneratorService
	NearbyPlacesService     *services.NearbyPlacesService
	GeocodingService        *services.GeocodingService
	NearbyPlacesHandler     *handlers.NearbyPlacesHandler
	GeocodeHandler          *handlers.GeocodeHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	NearbyPlacesHttpServer  *server.NearbyPlacesHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config, logger *zap.Logger) *Container {
	logger.Info("Initializing container", zap.String("env", cfg.Env))

	var hereApi here.HereAPI
	var openAIApi openai.OpenAIAPI
	var nominatimApi nominatim.NominatimAPI
	if !cfg.IsProd() {
		logger.Info("Using mock upstream APIs")
		hereApi = here.NewHereApiClientMock()
		openAIApi = openai.NewOpenAIApiClientMock()
		nominatimApi = nominatim.NewNominatimApiClientMock()
	} else {
		logger.Info("Using prod upstream APIs")

		hereClient := here.NewHereApiClient(api.NewHTTPClient(here.SERVICE_NAME, cfg.Here.BaseURL, cfg.Here.Timeout))
		hereClient.SetRateLimit(cfg.Here.RatePerSecond)
		hereApi = hereClient

		openAIApi = openai.NewOpenAIApiClient(cfg.OpenAI.BaseURL, cfg.OpenAI.Timeout)

		nominatimApi = nominatim.NewNominatimApiClient(
			api.NewHTTPClient(nominatim.SERVICE_NAME, cfg.Nominatim.BaseURL, cfg.Nominatim.Timeout),
			cfg.Nominatim.UserAgent,
		)
	}
	hereApi.SetCredentials(cfg.Here.APIKey)
	openAIApi.SetCredentials(cfg.OpenAI.APIKey)

	placeAggregatorService := services.NewPlaceAggregatorService(
		hereApi,
		config.PLACE_CATEGORIES,
		cfg.Here.ResultLimit,
		cfg.Here.Concurrency,
		logger,
	)
	summaryGeneratorService := services.NewSummaryGeneratorService(openAIApi, cfg.OpenAI.Model, cfg.Review.Language, logger)
	nearbyPlacesService := services.NewNearbyPlacesService(placeAggregatorService, summaryGeneratorService)
	geocodingService := services.NewGeocodingService(nominatimApi, logger)

	nearbyPlacesHandler := handlers.NewNearbyPlacesHandler(nearbyPlacesService, cfg.Server.RequestTimeout, logger)
	geocodeHandler := handlers.NewGeocodeHandler(geocodingService, logger)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(nearbyPlacesHandler, geocodeHandler, muxRouter, logger)
	httpServer := server.NewNearbyPlacesHttpServer(router, muxRouter, cfg.Server.Address, cfg.Server.ShutdownTimeout, logger)

	return &Container{
		HereAPI:                 hereApi,
		OpenAIAPI:               openAIApi,
		NominatimAPI:            nominatimApi,
		PlaceAggregatorService:  placeAggregatorService,
		SummaryGeneratorService: summaryGeneratorService,
		NearbyPlacesService:     nearbyPlacesService,
		GeocodingService:        geocodingService,
		NearbyPlacesHandler:     nearbyPlacesHandler,
		GeocodeHandler:          geocodeHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		NearbyPlacesHttpServer:  httpServer,
	}
}
