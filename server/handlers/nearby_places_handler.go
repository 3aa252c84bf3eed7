package handlers

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"np-server/models"
	"np-server/util"
)

// NearbyPlacesFinder is the service behind the nearby places routes.
type NearbyPlacesFinder interface {
	GetNearbyPlaces(ctx context.Context, origin models.Coordinate) (*models.NearbyPlacesResponse, error)
	GetPlacesByCategory(ctx context.Context, origin models.Coordinate) (models.PlacesByCategory, error)
}

type NearbyPlacesHandler struct {
	finder         NearbyPlacesFinder
	requestTimeout time.Duration
	logger         *zap.Logger
}

func NewNearbyPlacesHandler(finder NearbyPlacesFinder, requestTimeout time.Duration, logger *zap.Logger) *NearbyPlacesHandler {
	return &NearbyPlacesHandler{
		finder:         finder,
		requestTimeout: requestTimeout,
		logger:         logger.Named("NearbyPlacesHandler"),
	}
}

// GetNearbyPlaces handles GET /nearby-places?latitude={float}&longitude={float}
func (h *NearbyPlacesHandler) GetNearbyPlaces(w http.ResponseWriter, r *http.Request) {
	origin, err := parseCoordinate(r.URL.Query())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	resp, err := h.finder.GetNearbyPlaces(ctx, origin)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

// GetNearbyPlacesMap handles GET /nearby-places/map?latitude={float}&longitude={float}
// and renders the aggregated places as an HTML chart. No review is generated.
func (h *NearbyPlacesHandler) GetNearbyPlacesMap(w http.ResponseWriter, r *http.Request) {
	origin, err := parseCoordinate(r.URL.Query())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	places, err := h.finder.GetPlacesByCategory(ctx, origin)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	// Render to a buffer so a render failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := util.RenderPlacesMap(&buf, origin, places); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("Error writing map", zap.Error(err))
	}
}

func (h *NearbyPlacesHandler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.requestTimeout)
}
