package models

// Coordinate is a WGS84 latitude/longitude pair. Values are not range checked.
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}
