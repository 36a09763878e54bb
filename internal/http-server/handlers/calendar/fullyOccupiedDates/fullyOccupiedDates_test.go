package fullyOccupiedDates

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelbooking/internal/booking"
	"hotelbooking/internal/http-server/handlers/calendar/fullyOccupiedDates/mocks"
	"hotelbooking/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFullyOccupiedDatesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	occupied := []time.Time{
		time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(getter *mocks.OccupiedDatesGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success with occupied dates",
			url:  "/calendar/fully-occupied?start_date=2026-04-10&end_date=2026-04-12",
			mockSetup: func(getter *mocks.OccupiedDatesGetter) {
				getter.On("GetFullyOccupiedDates", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
					Return(occupied, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","dates":["2026-04-10","2026-04-11","2026-04-12"]}`,
		},
		{
			name: "Success with no occupied dates",
			url:  "/calendar/fully-occupied?start_date=2026-04-10&end_date=2026-04-12",
			mockSetup: func(getter *mocks.OccupiedDatesGetter) {
				getter.On("GetFullyOccupiedDates", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","dates":[]}`,
		},
		{
			name:           "Missing parameters",
			url:            "/calendar/fully-occupied",
			mockSetup:      func(getter *mocks.OccupiedDatesGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"start_date and end_date are required"}`,
		},
		{
			name:           "Malformed end date",
			url:            "/calendar/fully-occupied?start_date=2026-04-10&end_date=tomorrow",
			mockSetup:      func(getter *mocks.OccupiedDatesGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid end_date format, expected YYYY-MM-DD"}`,
		},
		{
			name: "Invalid date range",
			url:  "/calendar/fully-occupied?start_date=2026-04-12&end_date=2026-04-10",
			mockSetup: func(getter *mocks.OccupiedDatesGetter) {
				getter.On("GetFullyOccupiedDates", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
					Return(nil, fmt.Errorf("%w: the start date cannot be later than the end date", booking.ErrInvalidDateRange))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid date range: the start date cannot be later than the end date"}`,
		},
		{
			name: "Storage failure",
			url:  "/calendar/fully-occupied?start_date=2026-04-10&end_date=2026-04-12",
			mockSetup: func(getter *mocks.OccupiedDatesGetter) {
				getter.On("GetFullyOccupiedDates", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get fully occupied dates"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewOccupiedDatesGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")

			mockGetter.AssertExpectations(t)
		})
	}
}

func TestResponseOKFormatsDates(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, []time.Time{
		time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK","dates":["2026-01-02"]}`, rr.Body.String())
}
