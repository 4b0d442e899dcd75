package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cx-tal-miterani/flightselect/internal/models"
	"github.com/cx-tal-miterani/flightselect/internal/provider"
	"github.com/cx-tal-miterani/flightselect/internal/service"
	"github.com/cx-tal-miterani/flightselect/internal/service/mocks"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/search", h.SearchFlights).Methods(http.MethodGet)
	api.HandleFunc("/flights", h.GetFlights).Methods(http.MethodGet)
	api.HandleFunc("/flights/{number}", h.GetFlight).Methods(http.MethodGet)
	api.HandleFunc("/airports/{code}", h.GetAirport).Methods(http.MethodGet)
	api.HandleFunc("/amenities", h.GetAmenities).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["error"]
}

func TestHandler_SearchFlights(t *testing.T) {
	mockService := new(mocks.MockFlightService)
	handler := NewHandler(mockService, nil, nil, nil)
	router := setupTestRouter(handler)

	expectedReq := models.SearchRequest{
		Mode:        models.SearchModeBook,
		Origin:      "EWR",
		Destination: "LHR",
		Date:        "2025-11-12",
	}
	mockService.On("Search", mock.Anything, expectedReq).Return(&models.SearchResult{
		Flights: []models.FlightRecord{{ID: "ua110", FlightNumber: "UA110"}, {ID: "ua14", FlightNumber: "UA14"}},
		Source:  models.SourceCurated,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/search?mode=book&origin=EWR&destination=LHR&date=2025-11-12", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, 2, response.Count)
	assert.Equal(t, models.SourceCurated, response.Source)
	assert.Equal(t, "UA110", response.Flights[0].FlightNumber)

	mockService.AssertExpectations(t)
}

func TestHandler_SearchFlights_DefaultsToBook(t *testing.T) {
	mockService := new(mocks.MockFlightService)
	router := setupTestRouter(NewHandler(mockService, nil, nil, nil))

	mockService.On("Search", mock.Anything, models.SearchRequest{Mode: models.SearchModeBook, Airline: "Delta"}).
		Return(&models.SearchResult{Source: models.SourceCurated}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?airline=Delta", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"flights": [], "source": "curated", "count": 0}`, rec.Body.String())
	mockService.AssertExpectations(t)
}

func TestHandler_SearchFlights_Validation(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expectedError string
	}{
		{name: "unknown mode", query: "mode=browse", expectedError: "mode must be one of: book track"},
		{name: "long origin", query: "mode=book&origin=EWRX&destination=LHR", expectedError: "origin must be a 3-letter airport code"},
		{name: "numeric destination", query: "mode=book&origin=EWR&destination=123", expectedError: "destination must be a 3-letter airport code"},
		{name: "bad date", query: "mode=book&origin=EWR&destination=LHR&date=11/12/2025", expectedError: "date must be formatted as YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockFlightService)
			router := setupTestRouter(NewHandler(mockService, nil, nil, nil))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.expectedError, decodeError(t, rec))
			mockService.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_SearchFlights_ServiceErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{name: "invalid date", err: service.ErrInvalidDate, expectedStatus: http.StatusBadRequest, expectedError: "Invalid date"},
		{name: "workflow failure", err: errors.New("workflow timed out"), expectedStatus: http.StatusInternalServerError, expectedError: "Failed to search flights"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockFlightService)
			router := setupTestRouter(NewHandler(mockService, nil, nil, nil))
			mockService.On("Search", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?mode=track", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedError, decodeError(t, rec))
		})
	}
}

func TestHandler_GetFlights(t *testing.T) {
	fetcher := new(mocks.MockFetcher)
	router := setupTestRouter(NewHandler(new(mocks.MockFlightService), fetcher, nil, nil))

	fetcher.On("Fetch", mock.Anything, "SFO", "IAH").Return([]models.FlightRecord{{ID: "UA1840", FlightNumber: "UA1840"}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/flights?origin=SFO&destination=IAH", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Flights []models.FlightRecord `json:"flights"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response.Flights, 1)
	assert.Equal(t, "UA1840", response.Flights[0].ID)
	fetcher.AssertExpectations(t)
}

func TestHandler_GetFlights_Errors(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		fetchErr       error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing destination",
			query:          "origin=SFO",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Origin and Destination are required",
		},
		{
			name:           "missing api key",
			query:          "origin=SFO&destination=IAH",
			fetchErr:       provider.ErrMissingAPIKey,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "API Key not configured",
		},
		{
			name:           "provider error",
			query:          "origin=SFO&destination=IAH",
			fetchErr:       &provider.APIError{Code: "usage_limit_reached", Message: "Your monthly usage limit has been reached."},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Your monthly usage limit has been reached.",
		},
		{
			name:           "transport failure",
			query:          "origin=SFO&destination=IAH",
			fetchErr:       provider.ErrFetchFailed,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to fetch flight data",
		},
		{
			name:           "rate limited",
			query:          "origin=SFO&destination=IAH",
			fetchErr:       provider.ErrRateLimited,
			expectedStatus: http.StatusTooManyRequests,
			expectedError:  "Too many requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := new(mocks.MockFetcher)
			router := setupTestRouter(NewHandler(new(mocks.MockFlightService), fetcher, nil, nil))
			if tt.fetchErr != nil {
				fetcher.On("Fetch", mock.Anything, "SFO", "IAH").Return(nil, tt.fetchErr)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/flights?"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedError, decodeError(t, rec))
			fetcher.AssertExpectations(t)
		})
	}
}

func TestHandler_GetAirport(t *testing.T) {
	tests := []struct {
		name          string
		code          string
		expectedCode  string
		expectedKnown bool
		expectedTZ    string
	}{
		{name: "known airport", code: "sfo", expectedCode: "SFO", expectedKnown: true, expectedTZ: "America/Los_Angeles"},
		{name: "unknown airport", code: "xyz", expectedCode: "XYZ", expectedKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter(NewHandler(new(mocks.MockFlightService), nil, nil, nil))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/airports/"+tt.code, nil))

			assert.Equal(t, http.StatusOK, rec.Code)

			var response AirportResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
			assert.Equal(t, tt.expectedCode, response.Code)
			assert.Equal(t, tt.expectedKnown, response.Known)
			assert.Equal(t, tt.expectedTZ, response.Timezone)
			assert.NotZero(t, response.Latitude)
		})
	}
}

func TestHandler_GetFlight(t *testing.T) {
	tests := []struct {
		name           string
		number         string
		flight         *models.FlightRecord
		err            error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "curated flight",
			number:         "UA110",
			flight:         &models.FlightRecord{ID: "ua110", FlightNumber: "UA110", LiveStatus: &models.LiveStatus{Status: models.StatusInAir}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown flight",
			number:         "ZZ999",
			err:            service.ErrFlightNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  "Flight not found",
		},
		{
			name:           "lookup failure",
			number:         "UA14",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to get flight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := new(mocks.MockFlightLookup)
			if tt.flight != nil {
				lookup.On("FlightByNumber", mock.Anything, tt.number).Return(tt.flight, nil)
			} else {
				lookup.On("FlightByNumber", mock.Anything, tt.number).Return(nil, tt.err)
			}
			router := setupTestRouter(NewHandler(new(mocks.MockFlightService), nil, lookup, nil))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/flights/"+tt.number, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rec))
			} else {
				var flight models.FlightRecord
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&flight))
				assert.Equal(t, "UA110", flight.FlightNumber)
			}
			lookup.AssertExpectations(t)
		})
	}
}

func TestHandler_GetFlight_NoLookup(t *testing.T) {
	router := setupTestRouter(NewHandler(new(mocks.MockFlightService), nil, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/flights/UA110", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_GetAmenities(t *testing.T) {
	router := setupTestRouter(NewHandler(new(mocks.MockFlightService), nil, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/amenities?airline=Delta+Air+Lines", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Airline   string           `json:"airline"`
		Amenities []models.Amenity `json:"amenities"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "Delta Air Lines", response.Airline)
	require.NotEmpty(t, response.Amenities)
	assert.Equal(t, "Fast, Free Wi-Fi", response.Amenities[0].Name)
}

func TestHandler_HealthCheck(t *testing.T) {
	router := setupTestRouter(NewHandler(new(mocks.MockFlightService), nil, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}
