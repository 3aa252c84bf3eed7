package models

import "strconv"

// Place is a search result kept by the near filter.
type Place struct {
	Name     string     `json:"name"`
	Address  string     `json:"address"`
	Location [2]float64 `json:"location"` // [lat, lng]
	Distance string     `json:"distance"` // kilometers, 2 decimals
}

// DistanceKm parses the formatted distance back into kilometers.
func (p Place) DistanceKm() (float64, error) {
	return strconv.ParseFloat(p.Distance, 64)
}
