package models

// CategoryPlaces groups the places found for one category, in provider order.
type CategoryPlaces struct {
	Category Category
	Places   []Place
}

// PlacesByCategory holds one entry per configured category, in configuration order.
type PlacesByCategory []CategoryPlaces

// Get returns the places for the category with the given name.
func (p PlacesByCategory) Get(name string) ([]Place, bool) {
	for _, cp := range p {
		if cp.Category.Name == name {
			return cp.Places, true
		}
	}
	return nil, false
}

// Count returns the total number of places across all categories.
func (p PlacesByCategory) Count() int {
	n := 0
	for _, cp := range p {
		n += len(cp.Places)
	}
	return n
}
