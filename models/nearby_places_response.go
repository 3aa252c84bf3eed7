package models

import (
	"bytes"
	"encoding/json"
)

// NearbyPlacesResponse is the body of GET /nearby-places.
// The review is duplicated under nearby_places.review.summary for existing clients.
type NearbyPlacesResponse struct {
	NearbyPlaces NearbyPlaces `json:"nearby_places"`
	Review       string       `json:"review"`
}

// NearbyPlaces renders categories as object keys in configuration order.
// Empty categories are rendered as {"search_result": []}.
type NearbyPlaces struct {
	Places PlacesByCategory
	Review string
}

type emptySearchResult struct {
	SearchResult []Place `json:"search_result"`
}

type reviewSummary struct {
	Summary []string `json:"summary"`
}

func NewNearbyPlacesResponse(places PlacesByCategory, review string) *NearbyPlacesResponse {
	return &NearbyPlacesResponse{
		NearbyPlaces: NearbyPlaces{Places: places, Review: review},
		Review:       review,
	}
}

func (n NearbyPlaces) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for _, cp := range n.Places {
		key, err := json.Marshal(cp.Category.Name)
		if err != nil {
			return nil, err
		}

		var value interface{} = cp.Places
		if len(cp.Places) == 0 {
			value = emptySearchResult{SearchResult: []Place{}}
		}
		val, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		buf.WriteByte(',')
	}

	review, err := json.Marshal(reviewSummary{Summary: []string{n.Review}})
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"review":`)
	buf.Write(review)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
