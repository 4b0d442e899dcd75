package catalog

import (
	"math"
	"strings"

	"github.com/cx-tal-miterani/flightselect/internal/models"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Airport is a coordinate table entry
type Airport struct {
	Code      string  `json:"code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}

// Point returns the airport as an orb point (lon, lat).
func (a Airport) Point() orb.Point {
	return orb.Point{a.Longitude, a.Latitude}
}

// DefaultAirport is returned for unknown codes (New York City).
var DefaultAirport = Airport{Latitude: 40.7128, Longitude: -74.0060}

var airports = map[string]Airport{
	// US hubs
	"EWR": {Code: "EWR", Latitude: 40.6895, Longitude: -74.1745, Timezone: "America/New_York"},
	"JFK": {Code: "JFK", Latitude: 40.6413, Longitude: -73.7781, Timezone: "America/New_York"},
	"LGA": {Code: "LGA", Latitude: 40.7769, Longitude: -73.8740, Timezone: "America/New_York"},
	"SFO": {Code: "SFO", Latitude: 37.6213, Longitude: -122.3790, Timezone: "America/Los_Angeles"},
	"LAX": {Code: "LAX", Latitude: 33.9416, Longitude: -118.4085, Timezone: "America/Los_Angeles"},
	"ORD": {Code: "ORD", Latitude: 41.9742, Longitude: -87.9073, Timezone: "America/Chicago"},
	"DFW": {Code: "DFW", Latitude: 32.8998, Longitude: -97.0403, Timezone: "America/Chicago"},
	"IAH": {Code: "IAH", Latitude: 29.9902, Longitude: -95.3368, Timezone: "America/Chicago"},
	"HOU": {Code: "HOU", Latitude: 29.6454, Longitude: -95.2788, Timezone: "America/Chicago"},
	"MIA": {Code: "MIA", Latitude: 25.7959, Longitude: -80.2870, Timezone: "America/New_York"},
	"ATL": {Code: "ATL", Latitude: 33.6407, Longitude: -84.4277, Timezone: "America/New_York"},
	"DEN": {Code: "DEN", Latitude: 39.8561, Longitude: -104.6737, Timezone: "America/Denver"},
	"SEA": {Code: "SEA", Latitude: 47.4502, Longitude: -122.3088, Timezone: "America/Los_Angeles"},
	"BOS": {Code: "BOS", Latitude: 42.3656, Longitude: -71.0096, Timezone: "America/New_York"},
	"MCO": {Code: "MCO", Latitude: 28.4312, Longitude: -81.3081, Timezone: "America/New_York"},
	"LAS": {Code: "LAS", Latitude: 36.0840, Longitude: -115.1537, Timezone: "America/Los_Angeles"},

	// International
	"LHR": {Code: "LHR", Latitude: 51.4700, Longitude: -0.4543, Timezone: "Europe/London"},
	"CDG": {Code: "CDG", Latitude: 49.0097, Longitude: 2.5479, Timezone: "Europe/Paris"},
	"DXB": {Code: "DXB", Latitude: 25.2532, Longitude: 55.3657, Timezone: "Asia/Dubai"},
	"SIN": {Code: "SIN", Latitude: 1.3644, Longitude: 103.9915, Timezone: "Asia/Singapore"},
	"HND": {Code: "HND", Latitude: 35.5494, Longitude: 139.7798, Timezone: "Asia/Tokyo"},
	"NRT": {Code: "NRT", Latitude: 35.7720, Longitude: 140.3929, Timezone: "Asia/Tokyo"},
	"FRA": {Code: "FRA", Latitude: 50.0379, Longitude: 8.5622, Timezone: "Europe/Berlin"},
}

// LookupAirport finds an airport by code (case-insensitive).
func LookupAirport(code string) (Airport, bool) {
	a, ok := airports[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// Coordinates returns the airport for code, or DefaultAirport tagged with
// the requested code when it is unknown.
func Coordinates(code string) Airport {
	if a, ok := LookupAirport(code); ok {
		return a
	}
	a := DefaultAirport
	a.Code = strings.ToUpper(strings.TrimSpace(code))
	return a
}

// Timezone returns the IANA zone of a known airport, or "".
func Timezone(code string) string {
	a, _ := LookupAirport(code)
	return a.Timezone
}

// PositionAlong places an aircraft progress percent of the way along the
// great circle from origin to destination. Heading is the bearing toward
// the destination from that point, in [0, 360).
func PositionAlong(origin, destination string, progress int) models.Position {
	from := Coordinates(origin).Point()
	to := Coordinates(destination).Point()

	fraction := math.Max(0, math.Min(1, float64(progress)/100))
	total := geo.DistanceHaversine(from, to)

	p := from
	if total > 0 && fraction > 0 {
		p = geo.PointAtBearingAndDistance(from, geo.Bearing(from, to), total*fraction)
	}

	heading := geo.Bearing(from, to)
	if fraction < 1 && total > 0 {
		heading = geo.Bearing(p, to)
	}

	return models.Position{
		Latitude:  p.Lat(),
		Longitude: p.Lon(),
		Heading:   math.Mod(heading+360, 360),
	}
}
