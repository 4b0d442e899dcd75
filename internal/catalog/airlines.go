// Package catalog holds the read-only reference tables behind flight
// resolution: airlines, aircraft types, route schedules, airport
// coordinates, amenities and the curated flight list.
package catalog

import "strings"

// Airline is a carrier the synthesizer can assign to a flight
type Airline struct {
	Name     string
	Code     string
	Domestic bool
}

var airlines = []Airline{
	{Name: "United Airlines", Code: "UA", Domestic: true},
	{Name: "American Airlines", Code: "AA", Domestic: true},
	{Name: "Delta Air Lines", Code: "DL", Domestic: true},
	{Name: "Southwest Airlines", Code: "WN", Domestic: true},
	{Name: "British Airways", Code: "BA"},
	{Name: "Lufthansa", Code: "LH"},
	{Name: "Air France", Code: "AF"},
	{Name: "Emirates", Code: "EK"},
	{Name: "Qatar Airways", Code: "QR"},
	{Name: "Singapore Airlines", Code: "SQ"},
}

// US hubs; a route is domestic only when both ends are listed.
var domesticHubs = map[string]struct{}{
	"EWR": {}, "JFK": {}, "LGA": {}, "SFO": {}, "LAX": {}, "ORD": {},
	"DFW": {}, "IAH": {}, "HOU": {}, "MIA": {}, "ATL": {}, "DEN": {},
	"SEA": {}, "BOS": {}, "MCO": {}, "LAS": {},
}

// Airlines returns every carrier.
func Airlines() []Airline {
	out := make([]Airline, len(airlines))
	copy(out, airlines)
	return out
}

// DomesticAirlines returns the carriers allowed on domestic routes.
func DomesticAirlines() []Airline {
	var out []Airline
	for _, a := range airlines {
		if a.Domestic {
			out = append(out, a)
		}
	}
	return out
}

// IsDomesticRoute reports whether both airport codes are US hubs.
func IsDomesticRoute(origin, destination string) bool {
	_, o := domesticHubs[strings.ToUpper(origin)]
	_, d := domesticHubs[strings.ToUpper(destination)]
	return o && d
}

// AirlinesForRoute narrows the carrier list for domestic routes.
func AirlinesForRoute(origin, destination string) []Airline {
	if IsDomesticRoute(origin, destination) {
		return DomesticAirlines()
	}
	return Airlines()
}
