package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/cx-tal-miterani/flightselect/internal/catalog"
	"github.com/cx-tal-miterani/flightselect/internal/models"
	"github.com/cx-tal-miterani/flightselect/internal/provider"
	"github.com/cx-tal-miterani/flightselect/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	flightService service.FlightService
	fetcher       service.Fetcher
	lookup        service.FlightLookup
	validate      *validator.Validate
	logger        *slog.Logger
}

// NewHandler creates a new Handler instance
func NewHandler(flightService service.FlightService, fetcher service.Fetcher, lookup service.FlightLookup, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		flightService: flightService,
		fetcher:       fetcher,
		lookup:        lookup,
		validate:      v,
		logger:        logger,
	}
}

// SearchResponse is the body of a successful search
type SearchResponse struct {
	Flights []models.FlightRecord `json:"flights"`
	Source  models.SearchSource   `json:"source"`
	Count   int                   `json:"count"`
}

// AirportResponse is the body of an airport lookup
type AirportResponse struct {
	catalog.Airport
	Known bool `json:"known"`
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// SearchFlights handles GET /api/search
func (h *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := models.SearchRequest{
		Mode:         models.SearchMode(strings.ToLower(strings.TrimSpace(q.Get("mode")))),
		Origin:       strings.TrimSpace(q.Get("origin")),
		Destination:  strings.TrimSpace(q.Get("destination")),
		Date:         strings.TrimSpace(q.Get("date")),
		Airline:      strings.TrimSpace(q.Get("airline")),
		FlightNumber: strings.TrimSpace(q.Get("flightNumber")),
	}
	if req.Mode == "" {
		req.Mode = models.SearchModeBook
	}

	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result, err := h.flightService.Search(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			respondError(w, http.StatusBadRequest, "Invalid date")
			return
		}
		h.logger.Error("Flight search failed", "mode", req.Mode, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to search flights")
		return
	}

	flights := result.Flights
	if flights == nil {
		flights = []models.FlightRecord{}
	}
	respondJSON(w, http.StatusOK, SearchResponse{
		Flights: flights,
		Source:  result.Source,
		Count:   len(flights),
	})
}

// GetFlights handles GET /api/flights, a direct bridge to the provider
func (h *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	origin := strings.TrimSpace(r.URL.Query().Get("origin"))
	destination := strings.TrimSpace(r.URL.Query().Get("destination"))
	if origin == "" || destination == "" {
		respondError(w, http.StatusBadRequest, "Origin and Destination are required")
		return
	}

	if h.fetcher == nil {
		respondError(w, http.StatusInternalServerError, "API Key not configured")
		return
	}

	flights, err := h.fetcher.Fetch(r.Context(), origin, destination)
	if err != nil {
		h.logger.Warn("Provider request failed", "origin", origin, "destination", destination, "error", err)

		var apiErr *provider.APIError
		switch {
		case errors.Is(err, provider.ErrMissingAPIKey):
			respondError(w, http.StatusInternalServerError, "API Key not configured")
		case errors.Is(err, provider.ErrRateLimited):
			respondError(w, http.StatusTooManyRequests, "Too many requests")
		case errors.As(err, &apiErr):
			respondError(w, http.StatusInternalServerError, apiErr.Message)
		default:
			respondError(w, http.StatusInternalServerError, "Failed to fetch flight data")
		}
		return
	}

	if flights == nil {
		flights = []models.FlightRecord{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"flights": flights})
}

// GetFlight handles GET /api/flights/{number}
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]
	if h.lookup == nil {
		respondError(w, http.StatusNotFound, "Flight not found")
		return
	}

	flight, err := h.lookup.FlightByNumber(r.Context(), number)
	if err != nil {
		if errors.Is(err, service.ErrFlightNotFound) {
			respondError(w, http.StatusNotFound, "Flight not found")
			return
		}
		h.logger.Error("Flight lookup failed", "number", number, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to get flight")
		return
	}

	respondJSON(w, http.StatusOK, flight)
}

// GetAirport handles GET /api/airports/{code}
func (h *Handler) GetAirport(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	_, known := catalog.LookupAirport(code)
	respondJSON(w, http.StatusOK, AirportResponse{
		Airport: catalog.Coordinates(code),
		Known:   known,
	})
}

// GetAmenities handles GET /api/amenities?airline=
func (h *Handler) GetAmenities(w http.ResponseWriter, r *http.Request) {
	airline := strings.TrimSpace(r.URL.Query().Get("airline"))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"airline":   airline,
		"amenities": catalog.AmenitiesForAirline(airline),
	})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid search request"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be formatted as YYYY-MM-DD", fe.Field())
	case "len", "alpha":
		return fmt.Sprintf("%s must be a 3-letter airport code", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
