package provider

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cx-tal-miterani/flightselect/internal/catalog"
	"github.com/cx-tal-miterani/flightselect/internal/entropy"
	"github.com/cx-tal-miterani/flightselect/internal/models"
	"github.com/cx-tal-miterani/flightselect/internal/seatmap"
	"github.com/google/uuid"
)

const (
	defaultAircraftID       = "b737"
	defaultAircraftModel    = "Boeing 737"
	defaultManufacturer     = "Boeing"
	defaultAircraftCapacity = 180
	defaultSeatRows         = 30

	// fixed telemetry for airborne flights; the free tier exposes none
	activeProgress = 50
	activeAltitude = 35000
	activeSpeed    = 500

	basePrice   = 400
	priceSpread = 400
)

// ── AviationStack JSON types ──

type asResponse struct {
	Error *asError   `json:"error"`
	Data  []asFlight `json:"data"`
}

type asError struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
}

type asFlight struct {
	FlightDate   string        `json:"flight_date"`
	FlightStatus string        `json:"flight_status"`
	Departure    *asAirport    `json:"departure"`
	Arrival      *asAirport    `json:"arrival"`
	Airline      *asAirline    `json:"airline"`
	Flight       *asFlightInfo `json:"flight"`
	Aircraft     *asAircraft   `json:"aircraft"`
}

type asAirport struct {
	Airport   string `json:"airport"`
	Timezone  string `json:"timezone"`
	IATA      string `json:"iata"`
	ICAO      string `json:"icao"`
	Terminal  string `json:"terminal"`
	Gate      string `json:"gate"`
	Baggage   string `json:"baggage"`
	Scheduled string `json:"scheduled"`
}

type asAirline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
	ICAO string `json:"icao"`
}

type asFlightInfo struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
	ICAO   string `json:"icao"`
}

type asAircraft struct {
	Registration string `json:"registration"`
	IATA         string `json:"iata"`
	ICAO         string `json:"icao"`
}

func (e *asError) toAPIError() *APIError {
	return &APIError{
		Code:    strings.Trim(string(e.Code), `"`),
		Message: e.Message,
	}
}

// mapStatus folds provider statuses into display statuses. Cancellations
// are shown as Delayed.
func mapStatus(s string) models.FlightStatus {
	switch strings.ToLower(s) {
	case "landed":
		return models.StatusLanded
	case "active":
		return models.StatusInAir
	case "cancelled":
		return models.StatusDelayed
	default:
		return models.StatusScheduled
	}
}

var scheduledLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

// formatScheduled renders the provider timestamp's own clock digits. The
// provider sends airport-local times with a +00:00 offset, so the digits
// are the local schedule and must not be converted. Timestamps without an
// offset are accepted too.
func formatScheduled(iso string) string {
	if iso == "" {
		return "TBD"
	}
	for _, layout := range scheduledLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format(models.DisplayTimeLayout)
		}
	}
	return "TBD"
}

func (f *asFlight) toRecord(src entropy.Source) models.FlightRecord {
	var (
		airline  asAirline
		info     asFlightInfo
		dep, arr asAirport
		aircraft asAircraft
	)
	if f.Airline != nil {
		airline = *f.Airline
	}
	if f.Flight != nil {
		info = *f.Flight
	}
	if f.Departure != nil {
		dep = *f.Departure
	}
	if f.Arrival != nil {
		arr = *f.Arrival
	}
	if f.Aircraft != nil {
		aircraft = *f.Aircraft
	}

	live := models.LiveStatus{
		Status:            mapStatus(f.FlightStatus),
		Terminal:          dep.Terminal,
		Gate:              dep.Gate,
		BaggageClaim:      arr.Baggage,
		Registration:      aircraft.Registration,
		DepartureTimezone: dep.Timezone,
		ArrivalTimezone:   arr.Timezone,
	}
	switch live.Status {
	case models.StatusInAir:
		live.Progress = activeProgress
		live.CurrentAltitude = activeAltitude
		live.CurrentSpeed = activeSpeed
	case models.StatusLanded:
		live.Progress = 100
	}
	if live.Registration == "" {
		live.Registration = "N/A"
	}

	id := info.IATA
	if id == "" {
		id = "flt-" + uuid.NewString()
	}

	model := aircraft.IATA
	if model == "" {
		model = defaultAircraftModel
	}

	return models.FlightRecord{
		ID:            id,
		Airline:       airline.Name,
		FlightNumber:  airline.IATA + info.Number,
		DepartureTime: formatScheduled(dep.Scheduled),
		ArrivalTime:   formatScheduled(arr.Scheduled),
		Origin:        dep.IATA,
		Destination:   arr.IATA,
		Price:         basePrice + src.Intn(priceSpread),
		Aircraft: models.Aircraft{
			ID:           defaultAircraftID,
			Model:        model,
			Manufacturer: defaultManufacturer,
			Capacity:     defaultAircraftCapacity,
			Amenities:    catalog.AmenitiesForAirline(airline.Name),
			SeatMap:      seatmap.Generate(src, defaultSeatRows, seatmap.StandardColumns()),
		},
		LiveStatus: &live,
	}
}
