package getAllRooms

import (
	"log/slog"
	"net/http"

	"hotelbooking/internal/lib/api/response"
	"hotelbooking/internal/lib/logger/sl"
	"hotelbooking/internal/models"

	"github.com/go-chi/render"
)

type RoomsResponse struct {
	response.Response
	Rooms []models.Room `json:"rooms"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomsGetter
type RoomsGetter interface {
	GetAllRooms() ([]models.Room, error)
}

func New(log *slog.Logger, roomsGetter RoomsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.getAllRooms.New"

		log = log.With(slog.String("op", op))

		rooms, err := roomsGetter.GetAllRooms()
		if err != nil {
			log.Error("failed to get rooms", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get rooms"))
			return
		}

		log.Info("rooms retrieved successfully", slog.Int("count", len(rooms)))

		responseOK(w, r, rooms)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, rooms []models.Room) {
	render.JSON(w, r, RoomsResponse{
		Response: response.OK(),
		Rooms:    rooms,
	})
}
