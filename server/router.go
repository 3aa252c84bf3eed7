package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"np-server/server/handlers"
)

type NearbyPlacesHandler interface {
	GetNearbyPlaces(w http.ResponseWriter, r *http.Request)
	GetNearbyPlacesMap(w http.ResponseWriter, r *http.Request)
}

type GeocodeHandler interface {
	Geocode(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	nearbyPlacesHandler NearbyPlacesHandler
	geocodeHandler      GeocodeHandler
	router              *mux.Router
	logger              *zap.Logger
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	nearbyPlacesHandler NearbyPlacesHandler,
	geocodeHandler GeocodeHandler,
	router *mux.Router,
	logger *zap.Logger) *Router {
	return &Router{
		nearbyPlacesHandler: nearbyPlacesHandler,
		geocodeHandler:      geocodeHandler,
		router:              router,
		logger:              logger.Named("Router"),
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(requestIDMiddleware, instrumentationMiddleware(r.logger))

	// expects ?latitude={latitude(float)}&longitude={longitude(float)}
	r.router.HandleFunc("/nearby-places", r.nearbyPlacesHandler.GetNearbyPlaces).Methods("GET")
	r.router.HandleFunc("/nearby-places/map", r.nearbyPlacesHandler.GetNearbyPlacesMap).Methods("GET")

	// expects ?address={string}
	r.router.HandleFunc("/v1/geocode", r.geocodeHandler.Geocode).Methods("GET")

	r.router.HandleFunc("/ping", handlers.Ping).Methods("GET")
	r.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}
