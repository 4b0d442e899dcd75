package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cx-tal-miterani/flightselect/internal/catalog"
)

// Schema creates the curated flight table. Tracking and aircraft layout are
// stored as JSONB in the same shape as the embedded list.
const Schema = `
CREATE TABLE IF NOT EXISTS curated_flights (
	id             TEXT PRIMARY KEY,
	airline        TEXT NOT NULL,
	flight_number  TEXT NOT NULL,
	departure_time TEXT NOT NULL,
	arrival_time   TEXT NOT NULL,
	origin         CHAR(3) NOT NULL,
	destination    CHAR(3) NOT NULL,
	price          INTEGER NOT NULL,
	tracking       JSONB NOT NULL DEFAULT '{}',
	aircraft       JSONB NOT NULL,
	sort_order     INTEGER NOT NULL DEFAULT 0,
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_curated_flights_route ON curated_flights (origin, destination);
`

// CuratedFlightRow is a row of curated_flights
type CuratedFlightRow struct {
	ID            string
	Airline       string
	FlightNumber  string
	DepartureTime string
	ArrivalTime   string
	Origin        string
	Destination   string
	Price         int
	Tracking      []byte
	Aircraft      []byte
	SortOrder     int
	UpdatedAt     time.Time
}

// ToCuratedFlight decodes the JSONB columns.
func (r CuratedFlightRow) ToCuratedFlight() (catalog.CuratedFlight, error) {
	f := catalog.CuratedFlight{
		ID:            r.ID,
		Airline:       r.Airline,
		FlightNumber:  r.FlightNumber,
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
		Origin:        r.Origin,
		Destination:   r.Destination,
		Price:         r.Price,
	}
	if len(r.Tracking) > 0 {
		if err := json.Unmarshal(r.Tracking, &f.Tracking); err != nil {
			return catalog.CuratedFlight{}, fmt.Errorf("flight %s: failed to decode tracking: %w", r.FlightNumber, err)
		}
	}
	if err := json.Unmarshal(r.Aircraft, &f.Aircraft); err != nil {
		return catalog.CuratedFlight{}, fmt.Errorf("flight %s: failed to decode aircraft: %w", r.FlightNumber, err)
	}
	return f, nil
}

// NewCuratedFlightRow encodes f for storage at position order.
func NewCuratedFlightRow(f catalog.CuratedFlight, order int) (CuratedFlightRow, error) {
	tracking, err := json.Marshal(f.Tracking)
	if err != nil {
		return CuratedFlightRow{}, fmt.Errorf("flight %s: failed to encode tracking: %w", f.FlightNumber, err)
	}
	aircraft, err := json.Marshal(f.Aircraft)
	if err != nil {
		return CuratedFlightRow{}, fmt.Errorf("flight %s: failed to encode aircraft: %w", f.FlightNumber, err)
	}
	return CuratedFlightRow{
		ID:            f.ID,
		Airline:       f.Airline,
		FlightNumber:  f.FlightNumber,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Origin:        f.Origin,
		Destination:   f.Destination,
		Price:         f.Price,
		Tracking:      tracking,
		Aircraft:      aircraft,
		SortOrder:     order,
	}, nil
}
