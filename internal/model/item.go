package model

// Item is one named entry of the list with a quantity.
// ID is assigned once by the store and never changes.
type Item struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	IsEditing bool   `json:"isEditing"`
}
