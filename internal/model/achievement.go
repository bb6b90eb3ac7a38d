package model

// Achievement is a static badge descriptor. Users reference earned
// badges by id; the catalog itself is never mutated at runtime.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
