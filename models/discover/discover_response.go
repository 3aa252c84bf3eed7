package discover

import "fmt"

// DiscoverResponse mirrors the parts of the HERE /discover payload the aggregator reads.
// Fields are pointers so a missing field can be told apart from a zero value.
type DiscoverResponse struct {
	Items []DiscoverItem `json:"items"`
}

type DiscoverItem struct {
	Title    *string   `json:"title"`
	Address  *Address  `json:"address"`
	Position *Position `json:"position"`
}

type Address struct {
	Label *string `json:"label"`
}

type Position struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// Validate reports the first expected field missing from the response.
func (r *DiscoverResponse) Validate() error {
	if r.Items == nil {
		return fmt.Errorf("malformed discover response: missing items")
	}
	for i, item := range r.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("malformed discover response: item %d: %w", i, err)
		}
	}
	return nil
}

func (i DiscoverItem) Validate() error {
	switch {
	case i.Title == nil:
		return fmt.Errorf("missing title")
	case i.Address == nil || i.Address.Label == nil:
		return fmt.Errorf("missing address.label")
	case i.Position == nil || i.Position.Lat == nil || i.Position.Lng == nil:
		return fmt.Errorf("missing position")
	}
	return nil
}
