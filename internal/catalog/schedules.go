package catalog

import (
	"strings"

	"github.com/cx-tal-miterani/flightselect/internal/models"
)

var schedules = map[string][]models.SchedulePattern{
	"SFO-IAH": {
		{Airline: "United Airlines", FlightNumber: "UA242", DepartureTime: "06:00", Duration: 235, AircraftID: "b737-max9", Price: 420},
		{Airline: "United Airlines", FlightNumber: "UA1840", DepartureTime: "08:25", Duration: 235, AircraftID: "b777-200", Price: 450},
		{Airline: "United Airlines", FlightNumber: "UA2425", DepartureTime: "11:10", Duration: 240, AircraftID: "b787-9", Price: 510},
		{Airline: "United Airlines", FlightNumber: "UA2236", DepartureTime: "13:20", Duration: 235, AircraftID: "b737-max9", Price: 480},
		{Airline: "United Airlines", FlightNumber: "UA358", DepartureTime: "15:45", Duration: 235, AircraftID: "b777-200", Price: 550},
		{Airline: "United Airlines", FlightNumber: "UA1254", DepartureTime: "18:30", Duration: 230, AircraftID: "b787-9", Price: 490},
		{Airline: "United Airlines", FlightNumber: "UA489", DepartureTime: "23:55", Duration: 230, AircraftID: "b737-max9", Price: 380},
	},
	"IAH-SFO": {
		{Airline: "United Airlines", FlightNumber: "UA1123", DepartureTime: "07:15", Duration: 260, AircraftID: "b737-max9", Price: 420},
		{Airline: "United Airlines", FlightNumber: "UA455", DepartureTime: "09:40", Duration: 265, AircraftID: "b777-200", Price: 450},
		{Airline: "United Airlines", FlightNumber: "UA2210", DepartureTime: "12:30", Duration: 265, AircraftID: "b787-9", Price: 510},
		{Airline: "United Airlines", FlightNumber: "UA1748", DepartureTime: "16:20", Duration: 260, AircraftID: "b737-max9", Price: 550},
		{Airline: "United Airlines", FlightNumber: "UA532", DepartureTime: "20:10", Duration: 255, AircraftID: "b787-9", Price: 480},
	},
	"DFW-EWR": {
		{Airline: "American Airlines", FlightNumber: "AA1562", DepartureTime: "07:00", Duration: 205, AircraftID: "b737-max9", Price: 380},
		{Airline: "United Airlines", FlightNumber: "UA1639", DepartureTime: "08:15", Duration: 210, AircraftID: "a321neo", Price: 410},
		{Airline: "American Airlines", FlightNumber: "AA2408", DepartureTime: "10:35", Duration: 205, AircraftID: "a321neo", Price: 450},
		{Airline: "United Airlines", FlightNumber: "UA2368", DepartureTime: "13:00", Duration: 210, AircraftID: "b737-max9", Price: 420},
		{Airline: "American Airlines", FlightNumber: "AA1289", DepartureTime: "15:45", Duration: 205, AircraftID: "b737-max9", Price: 490},
		{Airline: "United Airlines", FlightNumber: "UA1882", DepartureTime: "18:20", Duration: 210, AircraftID: "a321neo", Price: 460},
	},
	"EWR-DFW": {
		{Airline: "United Airlines", FlightNumber: "UA1556", DepartureTime: "06:00", Duration: 230, AircraftID: "b737-max9", Price: 380},
		{Airline: "American Airlines", FlightNumber: "AA1145", DepartureTime: "08:30", Duration: 225, AircraftID: "a321neo", Price: 410},
		{Airline: "United Airlines", FlightNumber: "UA2233", DepartureTime: "11:15", Duration: 230, AircraftID: "a321neo", Price: 420},
		{Airline: "American Airlines", FlightNumber: "AA2678", DepartureTime: "14:45", Duration: 225, AircraftID: "b737-max9", Price: 450},
		{Airline: "United Airlines", FlightNumber: "UA482", DepartureTime: "17:30", Duration: 230, AircraftID: "b737-max9", Price: 490},
	},
	"JFK-LAX": {
		{Airline: "Delta Air Lines", FlightNumber: "DL472", DepartureTime: "07:00", Duration: 375, AircraftID: "b767-300", Price: 650},
		{Airline: "Delta Air Lines", FlightNumber: "DL324", DepartureTime: "09:30", Duration: 380, AircraftID: "a330-900", Price: 720},
		{Airline: "Delta Air Lines", FlightNumber: "DL449", DepartureTime: "12:15", Duration: 375, AircraftID: "b767-300", Price: 680},
		{Airline: "Delta Air Lines", FlightNumber: "DL245", DepartureTime: "16:00", Duration: 380, AircraftID: "a330-900", Price: 750},
		{Airline: "Delta Air Lines", FlightNumber: "DL921", DepartureTime: "19:30", Duration: 370, AircraftID: "b767-300", Price: 620},
	},
	"LAX-JFK": {
		{Airline: "Delta Air Lines", FlightNumber: "DL521", DepartureTime: "06:15", Duration: 330, AircraftID: "b767-300", Price: 650},
		{Airline: "Delta Air Lines", FlightNumber: "DL388", DepartureTime: "08:45", Duration: 335, AircraftID: "a330-900", Price: 720},
		{Airline: "Delta Air Lines", FlightNumber: "DL422", DepartureTime: "11:30", Duration: 330, AircraftID: "b767-300", Price: 680},
		{Airline: "Delta Air Lines", FlightNumber: "DL892", DepartureTime: "15:15", Duration: 335, AircraftID: "a330-900", Price: 750},
		{Airline: "Delta Air Lines", FlightNumber: "DL1145", DepartureTime: "21:30", Duration: 325, AircraftID: "b767-300", Price: 580},
	},
	"IAH-LGA": {
		{Airline: "United Airlines", FlightNumber: "UA1088", DepartureTime: "07:00", Duration: 215, AircraftID: "b737-max9", Price: 380},
		{Airline: "Spirit Airlines", FlightNumber: "NK912", DepartureTime: "09:30", Duration: 215, AircraftID: "a321neo", Price: 180},
		{Airline: "United Airlines", FlightNumber: "UA2254", DepartureTime: "11:45", Duration: 220, AircraftID: "a321neo", Price: 420},
		{Airline: "Delta Air Lines", FlightNumber: "DL5622", DepartureTime: "14:15", Duration: 215, AircraftID: "a321neo", Price: 450},
		{Airline: "United Airlines", FlightNumber: "UA482", DepartureTime: "17:30", Duration: 220, AircraftID: "b737-max9", Price: 490},
	},
	"HOU-LGA": {
		{Airline: "Southwest Airlines", FlightNumber: "WN124", DepartureTime: "06:15", Duration: 210, AircraftID: "b737-max9", Price: 290},
		{Airline: "Southwest Airlines", FlightNumber: "WN482", DepartureTime: "09:45", Duration: 215, AircraftID: "b737-max9", Price: 320},
		{Airline: "Southwest Airlines", FlightNumber: "WN1156", DepartureTime: "13:20", Duration: 210, AircraftID: "b737-max9", Price: 350},
		{Airline: "Southwest Airlines", FlightNumber: "WN2298", DepartureTime: "16:50", Duration: 215, AircraftID: "b737-max9", Price: 380},
	},
}

// RouteKey builds the "ORIGIN-DESTINATION" schedule index.
func RouteKey(origin, destination string) string {
	return strings.ToUpper(strings.TrimSpace(origin)) + "-" + strings.ToUpper(strings.TrimSpace(destination))
}

// Schedules returns a copy of the known daily patterns for a route.
// Lookup is case-insensitive.
func Schedules(origin, destination string) ([]models.SchedulePattern, bool) {
	patterns, ok := schedules[RouteKey(origin, destination)]
	if !ok {
		return nil, false
	}
	out := make([]models.SchedulePattern, len(patterns))
	copy(out, patterns)
	return out, true
}
