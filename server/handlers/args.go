package handlers

import (
	"net/url"
	"strconv"

	"np-server/apperrors"
	"np-server/models"
)

const (
	LATITUDE_QUERY_ARG  = "latitude"
	LONGITUDE_QUERY_ARG = "longitude"
	ADDRESS_QUERY_ARG   = "address"
)

// parseCoordinate reads latitude and longitude. Only the numeric type is checked.
func parseCoordinate(vals url.Values) (models.Coordinate, error) {
	lat, err := parseArgFloat64(vals, LATITUDE_QUERY_ARG)
	if err != nil {
		return models.Coordinate{}, err
	}
	lng, err := parseArgFloat64(vals, LONGITUDE_QUERY_ARG)
	if err != nil {
		return models.Coordinate{}, err
	}
	return models.Coordinate{Lat: lat, Lng: lng}, nil
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	if s == "" {
		return 0, apperrors.NewInvalidInput("missing argument %s", name)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperrors.NewInvalidInput("invalid argument %s: %q is not a number", name, s)
	}
	return f, nil
}
