package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cx-tal-miterani/flightselect/internal/entropy"
	"github.com/cx-tal-miterani/flightselect/internal/models"
	"github.com/cx-tal-miterani/flightselect/internal/seatmap"
)

//go:embed data/curated_flights.json
var curatedJSON []byte

// CuratedFlight is a hand-authored flight. Its seat map is stored as a
// layout and regenerated every time the flight is served.
type CuratedFlight struct {
	ID            string            `json:"id"`
	Airline       string            `json:"airline"`
	FlightNumber  string            `json:"flightNumber"`
	DepartureTime string            `json:"departureTime"`
	ArrivalTime   string            `json:"arrivalTime"`
	Origin        string            `json:"origin"`
	Destination   string            `json:"destination"`
	Price         int               `json:"price"`
	Tracking      models.LiveStatus `json:"tracking"`
	Aircraft      CuratedAircraft   `json:"aircraft"`
}

// CuratedAircraft is the equipment layout of a curated flight
type CuratedAircraft struct {
	ID           string                      `json:"id"`
	Model        string                      `json:"model"`
	Manufacturer string                      `json:"manufacturer"`
	Capacity     int                         `json:"capacity"`
	Amenities    []string                    `json:"amenities"` // premium amenity refs
	SeatRows     int                         `json:"seatRows"`
	SeatColumns  []string                    `json:"seatColumns"`
	SeatImages   map[models.SeatClass]string `json:"seatImages,omitempty"`
}

// EmbeddedCuratedFlights decodes the curated list bundled with the binary.
func EmbeddedCuratedFlights() ([]CuratedFlight, error) {
	var data struct {
		Flights []CuratedFlight `json:"flights"`
	}
	if err := json.Unmarshal(curatedJSON, &data); err != nil {
		return nil, fmt.Errorf("failed to decode curated flights: %w", err)
	}
	return data.Flights, nil
}

// CuratedList serves the curated flights as fresh records
type CuratedList struct {
	flights []CuratedFlight
	src     entropy.Source
}

// NewCuratedList validates amenity references and wraps the flights.
func NewCuratedList(flights []CuratedFlight, src entropy.Source) (*CuratedList, error) {
	for _, f := range flights {
		for _, ref := range f.Aircraft.Amenities {
			if _, ok := PremiumAmenity(ref); !ok {
				return nil, fmt.Errorf("curated flight %s: unknown amenity %q", f.FlightNumber, ref)
			}
		}
	}
	list := make([]CuratedFlight, len(flights))
	copy(list, flights)
	return &CuratedList{flights: list, src: src}, nil
}

// Flights builds a record for every curated flight, with a new seat map
// and, for airborne flights, an interpolated position.
func (c *CuratedList) Flights() []models.FlightRecord {
	out := make([]models.FlightRecord, 0, len(c.flights))
	for _, f := range c.flights {
		out = append(out, f.record(c.src))
	}
	return out
}

func (f CuratedFlight) record(src entropy.Source) models.FlightRecord {
	live := f.Tracking
	if live.Status == models.StatusInAir {
		pos := PositionAlong(f.Origin, f.Destination, live.Progress)
		live.Position = &pos
	}

	amenities := make([]*models.Amenity, 0, len(f.Aircraft.Amenities))
	for _, ref := range f.Aircraft.Amenities {
		if a, ok := PremiumAmenity(ref); ok {
			amenities = append(amenities, a)
		}
	}

	var images map[models.SeatClass]string
	if len(f.Aircraft.SeatImages) > 0 {
		images = make(map[models.SeatClass]string, len(f.Aircraft.SeatImages))
		for k, v := range f.Aircraft.SeatImages {
			images[k] = v
		}
	}

	return models.FlightRecord{
		ID:            f.ID,
		Airline:       f.Airline,
		FlightNumber:  f.FlightNumber,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Origin:        strings.ToUpper(f.Origin),
		Destination:   strings.ToUpper(f.Destination),
		Price:         f.Price,
		Aircraft: models.Aircraft{
			ID:           f.Aircraft.ID,
			Model:        f.Aircraft.Model,
			Manufacturer: f.Aircraft.Manufacturer,
			Capacity:     f.Aircraft.Capacity,
			Amenities:    amenities,
			SeatMap:      seatmap.Generate(src, f.Aircraft.SeatRows, f.Aircraft.SeatColumns),
			SeatImages:   images,
		},
		LiveStatus: &live,
	}
}
