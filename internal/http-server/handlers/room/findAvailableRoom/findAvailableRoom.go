package findAvailableRoom

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

type AvailableRoomResponse struct {
	response.Response
	RoomId int `json:"room_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomFinder
type RoomFinder interface {
	FindAvailableRoom(startDate, endDate time.Time) (int, bool, error)
}

func New(log *slog.Logger, finder RoomFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.findAvailableRoom.New"

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

		roomID, found, err := finder.FindAvailableRoom(startDate, endDate)
		if err != nil {
			log.Error("failed to find available room", sl.Err(err))

			if errors.Is(err, booking.ErrInvalidDateRange) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to find available room"))
			return
		}

		if !found {
			log.Info("no rooms available",
				slog.String("start_date", startStr),
				slog.String("end_date", endStr),
			)
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("no rooms available for the requested dates"))
			return
		}

		log.Info("available room found", slog.Int("room_id", roomID))

		responseOK(w, r, roomID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, roomID int) {
	render.JSON(w, r, AvailableRoomResponse{
		Response: response.OK(),
		RoomId:   roomID,
	})
}
