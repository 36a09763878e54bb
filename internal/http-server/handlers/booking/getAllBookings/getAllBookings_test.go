package getAllBookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelbooking/internal/http-server/handlers/booking/getAllBookings/mocks"
	"hotelbooking/internal/lib/logger/handlers/slogdiscard"
	"hotelbooking/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testBookings := []models.Booking{
		{
			ID:         1,
			RoomID:     1,
			CustomerID: 7,
			StartDate:  time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
			IsActive:   true,
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(getter *mocks.BookingsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success with bookings",
			mockSetup: func(getter *mocks.BookingsGetter) {
				getter.On("GetAllBookings").Return(testBookings, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp BookingsResponse
				err := json.Unmarshal([]byte(body), &resp)
				require.NoError(t, err)

				assert.Equal(t, "OK", resp.Status)
				require.Len(t, resp.Bookings, 1)
				assert.Equal(t, 1, resp.Bookings[0].ID)
				assert.Equal(t, 7, resp.Bookings[0].CustomerID)
				assert.True(t, resp.Bookings[0].IsActive)
			},
		},
		{
			name: "Success with no bookings",
			mockSetup: func(getter *mocks.BookingsGetter) {
				getter.On("GetAllBookings").Return([]models.Booking{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp BookingsResponse
				err := json.Unmarshal([]byte(body), &resp)
				require.NoError(t, err)

				assert.Equal(t, "OK", resp.Status)
				assert.Empty(t, resp.Bookings)
			},
		},
		{
			name: "Storage failure",
			mockSetup: func(getter *mocks.BookingsGetter) {
				getter.On("GetAllBookings").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewBookingsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/bookings", nil)
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
