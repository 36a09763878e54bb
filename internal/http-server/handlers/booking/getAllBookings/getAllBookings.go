package getAllBookings

import (
	"log/slog"
	"net/http"

	"hotelbooking/internal/lib/api/response"
	"hotelbooking/internal/lib/logger/sl"
	"hotelbooking/internal/models"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	GetAllBookings() ([]models.Booking, error)
}

func New(log *slog.Logger, bookingsGetter BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAllBookings.New"

		log = log.With(slog.String("op", op))

		bookings, err := bookingsGetter.GetAllBookings()
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved successfully", slog.Int("count", len(bookings)))

		responseOK(w, r, bookings)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.Booking) {
	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}
