package models

// GeocodeResponse is the body of GET /v1/geocode. Both fields are null when nothing matched.
type GeocodeResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
