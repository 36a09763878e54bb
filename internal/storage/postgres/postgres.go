package postgres

import (
	"database/sql"
	"fmt"

	"hotelbooking/internal/config"
	"hotelbooking/internal/models"

	_ "github.com/lib/pq"
)

// Storage is the engine's storage collaborator backed by Postgres. It
// exposes whole-collection reads only; all availability filtering happens
// in the booking manager.
type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// GetAllRooms returns every room ordered by id. The order matters: it is
// the enumeration order the booking manager's first-fit selection runs in.
func (s *Storage) GetAllRooms() ([]models.Room, error) {
	query := `
		SELECT id, description
		FROM rooms
		ORDER BY id ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		var room models.Room
		err = rows.Scan(
			&room.ID,
			&room.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rooms: %w", err)
	}

	return rooms, nil
}

func (s *Storage) GetAllBookings() ([]models.Booking, error) {
	query := `
		SELECT id, room_id, customer_id, start_date, end_date, is_active
		FROM bookings
		ORDER BY id ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.RoomID,
			&booking.CustomerID,
			&booking.StartDate,
			&booking.EndDate,
			&booking.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// AddBooking persists the booking and assigns its id from the sequence.
func (s *Storage) AddBooking(booking *models.Booking) error {
	query := `
		INSERT INTO bookings (room_id, customer_id, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := s.DB.QueryRow(query,
		booking.RoomID,
		booking.CustomerID,
		booking.StartDate,
		booking.EndDate,
		booking.IsActive,
	).Scan(&booking.ID)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}
