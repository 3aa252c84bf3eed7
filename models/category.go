package models

// Category is a searched place type and the provider query token for it.
type Category struct {
	Name  string
	Query string
}
