package handlers

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"np-server/apperrors"
	"np-server/models"
)

type Geocoder interface {
	Geocode(ctx context.Context, address string) (*models.Coordinate, error)
}

type GeocodeHandler struct {
	geocoder Geocoder
	logger   *zap.Logger
}

func NewGeocodeHandler(geocoder Geocoder, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocoder: geocoder,
		logger:   logger.Named("GeocodeHandler"),
	}
}

// Geocode handles GET /v1/geocode?address={string}
func (h *GeocodeHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	address := strings.TrimSpace(r.URL.Query().Get(ADDRESS_QUERY_ARG))
	if address == "" {
		writeError(w, h.logger, apperrors.NewInvalidInput("missing argument %s", ADDRESS_QUERY_ARG))
		return
	}

	coord, err := h.geocoder.Geocode(r.Context(), address)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var resp models.GeocodeResponse
	if coord != nil {
		resp.Latitude = &coord.Lat
		resp.Longitude = &coord.Lng
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}
