package models

// DisplayTimeLayout renders clock times the way flight cards show them,
// e.g. "06:40 PM".
const DisplayTimeLayout = "03:04 PM"

// FlightStatus is the tracking state shown for a flight
type FlightStatus string

const (
	StatusScheduled FlightStatus = "Scheduled"
	StatusOnTime    FlightStatus = "On Time"
	StatusDelayed   FlightStatus = "Delayed"
	StatusInAir     FlightStatus = "In Air"
	StatusLanded    FlightStatus = "Landed"
)

// FlightRecord is the normalized flight returned by every data tier
type FlightRecord struct {
	ID            string   `json:"id"`
	Airline       string   `json:"airline"`
	FlightNumber  string   `json:"flightNumber"`
	DepartureTime string   `json:"departureTime"`
	ArrivalTime   string   `json:"arrivalTime"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	Price         int      `json:"price"`
	Aircraft      Aircraft `json:"aircraft"`

	*LiveStatus
}

// CurrentStatus returns the tracking status, or "" when the record has no
// live-tracking bundle.
func (f *FlightRecord) CurrentStatus() FlightStatus {
	if f.LiveStatus == nil {
		return ""
	}
	return f.Status
}

// LiveStatus holds the optional live-tracking fields of a flight
type LiveStatus struct {
	Status            FlightStatus `json:"status,omitempty"`
	CurrentAltitude   int          `json:"currentAltitude"`
	CurrentSpeed      int          `json:"currentSpeed"`
	DistanceRemaining int          `json:"distanceRemaining"`
	TimeRemaining     string       `json:"timeRemaining"`
	Progress          int          `json:"progress"`
	Terminal          string       `json:"terminal,omitempty"`
	Gate              string       `json:"gate,omitempty"`
	Registration      string       `json:"registration,omitempty"`
	BaggageClaim      string       `json:"baggageClaim,omitempty"`
	DepartureTimezone string       `json:"departureTimezone,omitempty"`
	ArrivalTimezone   string       `json:"arrivalTimezone,omitempty"`
	Position          *Position    `json:"position,omitempty"`
}

// Position is an interpolated point on the great circle between two airports
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Heading   float64 `json:"heading"`
}

// Aircraft describes the equipment operating a flight
type Aircraft struct {
	ID           string               `json:"id"`
	Model        string               `json:"model"`
	Manufacturer string               `json:"manufacturer"`
	Capacity     int                  `json:"capacity"`
	Amenities    []*Amenity           `json:"amenities"`
	SeatMap      []Seat               `json:"seatMap"`
	SeatImages   map[SeatClass]string `json:"seatImages,omitempty"`
}

// Amenity is an onboard service entry. Catalog amenities are shared
// between aircraft and never modified.
type Amenity struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description,omitempty"`
	Items       []string `json:"items,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// Seat represents a seat on a flight
type Seat struct {
	ID              string    `json:"id"`
	Row             int       `json:"row"`
	Column          string    `json:"col"`
	Class           SeatClass `json:"type"`
	Occupied        bool      `json:"isOccupied"`
	Price           int       `json:"price"`
	ViewDescription string    `json:"viewDescription"`
}

type SeatClass string

const (
	SeatClassEconomy  SeatClass = "economy"
	SeatClassBusiness SeatClass = "business"
	SeatClassFirst    SeatClass = "first"
)

// SchedulePattern is one known daily departure on a route
type SchedulePattern struct {
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flightNumber"`
	DepartureTime string `json:"departureTime"` // HH:MM, 24h
	Duration      int    `json:"duration"`      // minutes
	AircraftID    string `json:"aircraft"`
	Price         int    `json:"price"`
}
