package models

import "time"

// Booking reserves one room for a contiguous, inclusive range of calendar
// dates. Only the date part of StartDate/EndDate matters: an active booking
// occupies its room on every day d with StartDate <= d <= EndDate.
type Booking struct {
	ID         int       `json:"id"`
	RoomID     int       `json:"room_id"`
	CustomerID int       `json:"customer_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	IsActive   bool      `json:"is_active"`
}
