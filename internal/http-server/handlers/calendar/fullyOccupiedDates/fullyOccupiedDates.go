package fullyOccupiedDates

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"hotelbooking/internal/booking"
	"hotelbooking/internal/lib/api/response"
	"hotelbooking/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

const dateLayout = "2006-01-02"

type OccupiedDatesResponse struct {
	response.Response
	Dates []string `json:"dates"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OccupiedDatesGetter
type OccupiedDatesGetter interface {
	GetFullyOccupiedDates(startDate, endDate time.Time) ([]time.Time, error)
}

func New(log *slog.Logger, getter OccupiedDatesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calendar.fullyOccupiedDates.New"

		log = log.With(slog.String("op", op))

		startStr := r.URL.Query().Get("start_date")
		endStr := r.URL.Query().Get("end_date")

		if startStr == "" || endStr == "" {
			log.Error("start_date and end_date are required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("start_date and end_date are required"))
			return
		}

		startDate, err := time.Parse(dateLayout, startStr)
		if err != nil {
			log.Error("invalid start date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid start_date format, expected YYYY-MM-DD"))
			return
		}

		endDate, err := time.Parse(dateLayout, endStr)
		if err != nil {
			log.Error("invalid end date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid end_date format, expected YYYY-MM-DD"))
			return
		}

		dates, err := getter.GetFullyOccupiedDates(startDate, endDate)
		if err != nil {
			log.Error("failed to get fully occupied dates", sl.Err(err))

			if errors.Is(err, booking.ErrInvalidDateRange) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get fully occupied dates"))
			return
		}

		log.Info("fully occupied dates computed", slog.Int("count", len(dates)))

		responseOK(w, r, dates)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, dates []time.Time) {
	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, d.Format(dateLayout))
	}

	render.JSON(w, r, OccupiedDatesResponse{
		Response: response.OK(),
		Dates:    formatted,
	})
}
