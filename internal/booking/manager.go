package booking

import (
	"fmt"
	"time"

	"hotelbooking/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomRepository
type RoomRepository interface {
	GetAllRooms() ([]models.Room, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingRepository
type BookingRepository interface {
	GetAllBookings() ([]models.Booking, error)
	AddBooking(booking *models.Booking) error
}

// Manager decides whether booking requests can be admitted. It keeps no
// state of its own: every call reads the full room and booking sets from
// the repositories and computes availability from scratch, so a Manager is
// safe to share between handlers.
type Manager struct {
	rooms    RoomRepository
	bookings BookingRepository
	now      func() time.Time
}

// NewManager wires the manager to its storage collaborators. The now
// function is the clock behind the "stay must start after today" check;
// pass nil to use time.Now.
func NewManager(rooms RoomRepository, bookings BookingRepository, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}

	return &Manager{
		rooms:    rooms,
		bookings: bookings,
		now:      now,
	}
}

// FindAvailableRoom returns the id of the first room, in the repository's
// enumeration order, that has no active booking overlapping the requested
// range. The second return value is false when every room is taken; that is
// a normal outcome, not an error.
func (m *Manager) FindAvailableRoom(startDate, endDate time.Time) (int, bool, error) {
	if err := m.validateRange(startDate, endDate); err != nil {
		return 0, false, err
	}

	rooms, err := m.rooms.GetAllRooms()
	if err != nil {
		return 0, false, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := m.bookings.GetAllBookings()
	if err != nil {
		return 0, false, fmt.Errorf("failed to get bookings: %w", err)
	}

	start, end := toDate(startDate), toDate(endDate)

	for _, room := range rooms {
		if !roomTaken(room.ID, bookings, start, end) {
			return room.ID, true, nil
		}
	}

	return 0, false, nil
}

// CreateBooking validates the candidate, allocates a room and persists the
// booking. It returns false with a nil error when no room is free for the
// requested dates; the candidate is then left untouched and unpersisted.
func (m *Manager) CreateBooking(booking *models.Booking) (bool, error) {
	if err := m.validateRange(booking.StartDate, booking.EndDate); err != nil {
		return false, err
	}

	roomID, found, err := m.FindAvailableRoom(booking.StartDate, booking.EndDate)
	if err != nil {
		return false, err
	}

	if !found {
		return false, nil
	}

	booking.RoomID = roomID
	booking.IsActive = true

	if err = m.bookings.AddBooking(booking); err != nil {
		return false, fmt.Errorf("failed to persist booking: %w", err)
	}

	return true, nil
}

// GetFullyOccupiedDates returns, in ascending order, every calendar date in
// [startDate, endDate] on which each defined room has at least one active
// booking covering it. With zero rooms there is nothing to occupy, so the
// result is empty for any range.
func (m *Manager) GetFullyOccupiedDates(startDate, endDate time.Time) ([]time.Time, error) {
	if err := m.validateRange(startDate, endDate); err != nil {
		return nil, err
	}

	rooms, err := m.rooms.GetAllRooms()
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := m.bookings.GetAllBookings()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	if len(rooms) == 0 {
		return nil, nil
	}

	var fullyOccupied []time.Time

	for day := toDate(startDate); !day.After(toDate(endDate)); day = day.AddDate(0, 0, 1) {
		if allRoomsTakenOn(day, rooms, bookings) {
			fullyOccupied = append(fullyOccupied, day)
		}
	}

	return fullyOccupied, nil
}

// roomTaken reports whether any active booking for the given room overlaps
// the normalized range [start, end].
func roomTaken(roomID int, bookings []models.Booking, start, end time.Time) bool {
	for _, b := range bookings {
		if !b.IsActive || b.RoomID != roomID {
			continue
		}

		if overlaps(start, end, toDate(b.StartDate), toDate(b.EndDate)) {
			return true
		}
	}

	return false
}

// allRoomsTakenOn is a point-in-time containment check: the day counts as
// fully occupied only when every room individually has an active booking
// covering it. Counting bookings across rooms would miss the case of two
// bookings stacked on one room while another stands empty.
func allRoomsTakenOn(day time.Time, rooms []models.Room, bookings []models.Booking) bool {
	for _, room := range rooms {
		if !roomTakenOn(room.ID, bookings, day) {
			return false
		}
	}

	return true
}

func roomTakenOn(roomID int, bookings []models.Booking, day time.Time) bool {
	for _, b := range bookings {
		if !b.IsActive || b.RoomID != roomID {
			continue
		}

		if !day.Before(toDate(b.StartDate)) && !day.After(toDate(b.EndDate)) {
			return true
		}
	}

	return false
}
