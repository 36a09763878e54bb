package getAllRooms

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelbooking/internal/http-server/handlers/room/getAllRooms/mocks"
	"hotelbooking/internal/lib/logger/handlers/slogdiscard"
	"hotelbooking/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllRoomsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testRooms := []models.Room{
		{ID: 1, Description: "Single room"},
		{ID: 2, Description: "Double room"},
	}

	testCases := []struct {
		name           string
		mockSetup      func(getter *mocks.RoomsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success with rooms",
			mockSetup: func(getter *mocks.RoomsGetter) {
				getter.On("GetAllRooms").Return(testRooms, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp RoomsResponse
				err := json.Unmarshal([]byte(body), &resp)
				require.NoError(t, err)

				assert.Equal(t, "OK", resp.Status)
				require.Len(t, resp.Rooms, 2)
				assert.Equal(t, 1, resp.Rooms[0].ID)
				assert.Equal(t, "Single room", resp.Rooms[0].Description)
				assert.Equal(t, 2, resp.Rooms[1].ID)
			},
		},
		{
			name: "Success with no rooms",
			mockSetup: func(getter *mocks.RoomsGetter) {
				getter.On("GetAllRooms").Return([]models.Room{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp RoomsResponse
				err := json.Unmarshal([]byte(body), &resp)
				require.NoError(t, err)

				assert.Equal(t, "OK", resp.Status)
				assert.Empty(t, resp.Rooms)
			},
		},
		{
			name: "Storage failure",
			mockSetup: func(getter *mocks.RoomsGetter) {
				getter.On("GetAllRooms").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get rooms"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewRoomsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/rooms", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockGetter.AssertExpectations(t)
		})
	}
}
