package models

// Room is identity-only as far as availability is concerned; the
// description is a display label and never participates in allocation.
type Room struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}
