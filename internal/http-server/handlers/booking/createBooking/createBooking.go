package createBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"hotelbooking/internal/booking"
	"hotelbooking/internal/lib/api/response"
	"hotelbooking/internal/lib/logger/sl"
	"hotelbooking/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

type BookingRequest struct {
	CustomerId int    `json:"customer_id" validate:"required"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
}

type BookingResponse struct {
	response.Response
	BookingId int `json:"booking_id"`
	RoomId    int `json:"room_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(booking *models.Booking) (bool, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		startDate, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			log.Error("invalid start date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid start_date format, expected YYYY-MM-DD"))
			return
		}

		endDate, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			log.Error("invalid end date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid end_date format, expected YYYY-MM-DD"))
			return
		}

		candidate := &models.Booking{
			CustomerID: req.CustomerId,
			StartDate:  startDate,
			EndDate:    endDate,
		}

		created, err := creator.CreateBooking(candidate)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			if errors.Is(err, booking.ErrInvalidDateRange) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))
			return
		}

		if !created {
			log.Info("no rooms available for requested dates")
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("no rooms available for the requested dates"))
			return
		}

		log.Info("booking created",
			slog.Int("booking_id", candidate.ID),
			slog.Int("room_id", candidate.RoomID),
		)

		responseOK(w, r, candidate)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booked *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response:  response.OK(),
		BookingId: booked.ID,
		RoomId:    booked.RoomID,
	})
}
