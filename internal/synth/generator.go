// Package synth produces flight records for a route without calling any
// external service: known routes expand their daily schedule, unknown
// routes get a plausible random timetable.
package synth

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/cx-tal-miterani/flightselect/internal/catalog"
	"github.com/cx-tal-miterani/flightselect/internal/entropy"
	"github.com/cx-tal-miterani/flightselect/internal/models"
	"github.com/cx-tal-miterani/flightselect/internal/seatmap"
)

const (
	// miles flown per scheduled minute on known routes
	knownRouteMilesPerMinute = 8

	seatsPerGeneratedRow = 6

	clockLayout = "15:04"
)

var (
	knownTerminals   = []string{"A", "B", "C", "1", "2"}
	knownGateLetters = []string{"A", "B", "C"}

	randomTerminals    = []string{"A", "B", "C", "1", "2", "3", "4", "5"}
	randomGateLetters  = []string{"A", "B", "C", "D"}
	randomRegSuffixes  = []string{"UA", "AA", "DL", "XX"}
	quarterHourMinutes = []int{0, 15, 30, 45}
)

// Generator synthesizes flights
type Generator struct {
	src    entropy.Source
	now    func() time.Time
	loc    *time.Location
	logger *slog.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLocation sets the zone used for "today" and schedule clock times.
func WithLocation(loc *time.Location) Option {
	return func(g *Generator) {
		if loc != nil {
			g.loc = loc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator drawing randomness from src.
func NewGenerator(src entropy.Source, opts ...Option) *Generator {
	g := &Generator{
		src:    src,
		now:    time.Now,
		loc:    time.Local,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns flights for origin to destination on date. A zero date
// means today. The result is sorted by departure display time.
func (g *Generator) Generate(origin, destination string, date time.Time) []models.FlightRecord {
	origin = strings.ToUpper(strings.TrimSpace(origin))
	destination = strings.ToUpper(strings.TrimSpace(destination))

	now := g.now().In(g.loc)
	searchDate := now
	if !date.IsZero() {
		y, m, d := date.Date()
		searchDate = time.Date(y, m, d, 0, 0, 0, 0, g.loc)
	}
	isToday := sameDay(searchDate, now)

	var flights []models.FlightRecord
	if patterns, ok := catalog.Schedules(origin, destination); ok {
		g.logger.Debug("Expanding known schedule", "route", catalog.RouteKey(origin, destination), "patterns", len(patterns))
		flights = g.fromSchedule(origin, destination, patterns, searchDate, now, isToday)
	} else {
		flights = g.random(origin, destination, searchDate, now, isToday)
		g.logger.Debug("Generated random timetable", "route", catalog.RouteKey(origin, destination), "flights", len(flights))
	}

	SortByDisplayTime(flights)
	return flights
}

func (g *Generator) fromSchedule(origin, destination string, patterns []models.SchedulePattern, searchDate, now time.Time, isToday bool) []models.FlightRecord {
	flights := make([]models.FlightRecord, 0, len(patterns))
	for _, p := range patterns {
		hour, minute, err := parseClock(p.DepartureTime)
		if err != nil {
			g.logger.Warn("Skipping schedule pattern", "flightNumber", p.FlightNumber, "departureTime", p.DepartureTime, "error", err)
			continue
		}
		dep := atClock(searchDate, hour, minute)
		arr := dep.Add(time.Duration(p.Duration) * time.Minute)

		window := Window{Departure: dep, Arrival: arr, Duration: p.Duration, Distance: p.Duration * knownRouteMilesPerMinute}
		live := g.liveStatus(origin, destination, now, window, isToday)
		live.Terminal = entropy.Pick(g.src, knownTerminals)
		live.Gate = fmt.Sprintf("%s%d", entropy.Pick(g.src, knownGateLetters), entropy.IntBetween(g.src, 1, 50))
		live.Registration = fmt.Sprintf("N%d%s", entropy.IntBetween(g.src, 100, 999), airlinePrefix(p.Airline))

		flights = append(flights, models.FlightRecord{
			ID:            fmt.Sprintf("%s-%d", strings.ToLower(p.FlightNumber), searchDate.UnixMilli()),
			Airline:       p.Airline,
			FlightNumber:  p.FlightNumber,
			DepartureTime: dep.Format(models.DisplayTimeLayout),
			ArrivalTime:   arr.Format(models.DisplayTimeLayout),
			Origin:        origin,
			Destination:   destination,
			Price:         p.Price,
			Aircraft:      g.aircraft(catalog.AircraftTypeOrDefault(p.AircraftID)),
			LiveStatus:    &live,
		})
	}
	return flights
}

func (g *Generator) random(origin, destination string, searchDate, now time.Time, isToday bool) []models.FlightRecord {
	count := entropy.IntBetween(g.src, 3, 8)
	basePrice := entropy.IntBetween(g.src, 300, 1200)
	distance := entropy.IntBetween(g.src, 500, 9000)
	// 500 mph cruise plus 30 minutes of taxi
	duration := int(float64(distance)/500*60 + 30)

	carriers := catalog.AirlinesForRoute(origin, destination)
	fleet := catalog.Fleet()

	flights := make([]models.FlightRecord, 0, count)
	for i := 0; i < count; i++ {
		airline := entropy.Pick(g.src, carriers)
		aircraftType := entropy.Pick(g.src, fleet)
		flightNumber := fmt.Sprintf("%s%d", airline.Code, entropy.IntBetween(g.src, 100, 9999))

		dep := atClock(searchDate, entropy.IntBetween(g.src, 6, 21), entropy.Pick(g.src, quarterHourMinutes))
		arr := dep.Add(time.Duration(duration) * time.Minute)

		live := g.liveStatus(origin, destination, now, Window{Departure: dep, Arrival: arr, Duration: duration, Distance: distance}, isToday)
		price := basePrice + entropy.IntBetween(g.src, -50, 200)
		live.Terminal = entropy.Pick(g.src, randomTerminals)
		live.Gate = fmt.Sprintf("%s%d", entropy.Pick(g.src, randomGateLetters), entropy.IntBetween(g.src, 1, 99))
		live.Registration = fmt.Sprintf("N%d%s", entropy.IntBetween(g.src, 100, 999), entropy.Pick(g.src, randomRegSuffixes))

		flights = append(flights, models.FlightRecord{
			ID:            strings.ToLower(flightNumber),
			Airline:       airline.Name,
			FlightNumber:  flightNumber,
			DepartureTime: dep.Format(models.DisplayTimeLayout),
			ArrivalTime:   arr.Format(models.DisplayTimeLayout),
			Origin:        origin,
			Destination:   destination,
			Price:         price,
			Aircraft:      g.aircraft(aircraftType),
			LiveStatus:    &live,
		})
	}
	return flights
}

// liveStatus derives tracking fields for today's flights; other dates
// are always Scheduled.
func (g *Generator) liveStatus(origin, destination string, now time.Time, w Window, isToday bool) models.LiveStatus {
	var live models.LiveStatus
	if isToday {
		live = DeriveStatus(g.src, now, w)
	} else {
		live = scheduledStatus(models.StatusScheduled, w)
	}
	if live.Status == models.StatusInAir {
		pos := catalog.PositionAlong(origin, destination, live.Progress)
		live.Position = &pos
	}
	live.DepartureTimezone = catalog.Timezone(origin)
	live.ArrivalTimezone = catalog.Timezone(destination)
	return live
}

func (g *Generator) aircraft(t catalog.AircraftType) models.Aircraft {
	return models.Aircraft{
		ID:           t.ID,
		Model:        t.Model,
		Manufacturer: t.Manufacturer,
		Capacity:     t.Capacity,
		Amenities:    catalog.GenericAmenities(),
		SeatMap:      seatmap.Generate(g.src, t.Capacity/seatsPerGeneratedRow, seatmap.StandardColumns()),
	}
}

// SortByDisplayTime orders flights by their departure clock string, read
// against a fixed reference day. Flights departing after midnight of the
// next day therefore sort before evening departures.
func SortByDisplayTime(flights []models.FlightRecord) {
	sort.SliceStable(flights, func(i, j int) bool {
		return displayClock(flights[i].DepartureTime).Before(displayClock(flights[j].DepartureTime))
	})
}

func displayClock(s string) time.Time {
	t, err := time.Parse(models.DisplayTimeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseClock(hhmm string) (hour, minute int, err error) {
	t, err := time.Parse(clockLayout, hhmm)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

func atClock(day time.Time, hour, minute int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, day.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// airlinePrefix upper-cases the whole prefix since tail numbers are
// written in capitals, so "United" yields "UN".
func airlinePrefix(airline string) string {
	if len(airline) < 2 {
		return strings.ToUpper(airline)
	}
	return strings.ToUpper(airline[:2])
}
