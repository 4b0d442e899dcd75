package synth

import (
	"strings"
	"testing"
	"time"

	"github.com/cx-tal-miterani/flightselect/internal/catalog"
	"github.com/cx-tal-miterani/flightselect/internal/entropy"
	"github.com/cx-tal-miterani/flightselect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestGenerator(seed int64, now time.Time) *Generator {
	return NewGenerator(entropy.NewSeeded(seed), WithClock(fixedClock(now)), WithLocation(time.UTC))
}

func TestGenerate_KnownRouteFutureDate(t *testing.T) {
	now := time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC)
	g := newTestGenerator(1, now)

	flights := g.Generate("SFO", "IAH", date)

	require.Len(t, flights, 7)
	expectedOrder := []string{"UA242", "UA1840", "UA2425", "UA2236", "UA358", "UA1254", "UA489"}
	for i, f := range flights {
		assert.Equal(t, expectedOrder[i], f.FlightNumber)
		assert.Equal(t, "SFO", f.Origin)
		assert.Equal(t, "IAH", f.Destination)
		assert.Equal(t, "United Airlines", f.Airline)
		assert.Equal(t, strings.ToLower(f.FlightNumber)+"-1762905600000", f.ID)

		require.NotNil(t, f.LiveStatus)
		assert.Equal(t, models.StatusScheduled, f.Status)
		assert.Zero(t, f.Progress)
		assert.Zero(t, f.CurrentAltitude)
		assert.Zero(t, f.CurrentSpeed)
		assert.Nil(t, f.Position)
		assert.Equal(t, "America/Los_Angeles", f.DepartureTimezone)
		assert.Equal(t, "America/Chicago", f.ArrivalTimezone)
		assert.Contains(t, []string{"A", "B", "C", "1", "2"}, f.Terminal)
		assert.True(t, strings.HasPrefix(f.Registration, "N"))
		assert.True(t, strings.HasSuffix(f.Registration, "UN"))
		assert.Equal(t, catalog.GenericAmenities(), f.Aircraft.Amenities)
	}

	assert.Equal(t, "06:00 AM", flights[0].DepartureTime)
	assert.Equal(t, "09:55 AM", flights[0].ArrivalTime)
	assert.Equal(t, 420, flights[0].Price)
	assert.Equal(t, 235*8, flights[0].DistanceRemaining)
	assert.Equal(t, "11:55 PM", flights[6].DepartureTime)
	assert.Equal(t, "03:45 AM", flights[6].ArrivalTime)
}

func TestGenerate_KnownRouteAircraft(t *testing.T) {
	now := time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)
	flights := newTestGenerator(2, now).Generate("SFO", "IAH", now.AddDate(0, 0, 1))
	require.Len(t, flights, 7)

	maxNine := flights[0]
	assert.Equal(t, "b737-max9", maxNine.Aircraft.ID)
	assert.Len(t, maxNine.Aircraft.SeatMap, (178/6)*6)

	// b777-200 is not a generator type and falls back to the 777-300ER
	fallback := flights[1]
	assert.Equal(t, "UA1840", fallback.FlightNumber)
	assert.Equal(t, "b777-300er", fallback.Aircraft.ID)
	assert.Equal(t, 396, fallback.Aircraft.Capacity)
	assert.Len(t, fallback.Aircraft.SeatMap, 66*6)
}

func TestGenerate_RouteLookupIsCaseInsensitive(t *testing.T) {
	now := time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)
	date := now.AddDate(0, 0, 3)

	upper := newTestGenerator(5, now).Generate("SFO", "IAH", date)
	lower := newTestGenerator(5, now).Generate("sfo", "iah", date)

	require.Len(t, lower, len(upper))
	for i := range upper {
		assert.Equal(t, upper[i].FlightNumber, lower[i].FlightNumber)
		assert.Equal(t, upper[i].DepartureTime, lower[i].DepartureTime)
		assert.Equal(t, upper[i].Price, lower[i].Price)
		assert.Equal(t, "SFO", lower[i].Origin)
	}
}

func TestGenerate_KnownRouteToday(t *testing.T) {
	now := time.Date(2025, 11, 10, 12, 55, 0, 0, time.UTC)
	flights := newTestGenerator(3, now).Generate("SFO", "IAH", time.Time{})
	require.Len(t, flights, 7)

	byNumber := map[string]models.FlightRecord{}
	for _, f := range flights {
		byNumber[f.FlightNumber] = f
	}

	assert.Equal(t, models.StatusLanded, byNumber["UA242"].Status)
	assert.Equal(t, 100, byNumber["UA242"].Progress)
	assert.Zero(t, byNumber["UA242"].DistanceRemaining)
	assert.Equal(t, "Arrived", byNumber["UA242"].TimeRemaining)

	assert.Equal(t, models.StatusLanded, byNumber["UA1840"].Status)

	inAir := byNumber["UA2425"]
	assert.Equal(t, models.StatusInAir, inAir.Status)
	assert.Equal(t, 43, inAir.Progress)
	assert.Equal(t, "2h 15m", inAir.TimeRemaining)
	assert.Equal(t, 1094, inAir.DistanceRemaining)
	require.NotNil(t, inAir.Position)
	assert.Less(t, inAir.Position.Longitude, -95.3368)
	assert.Greater(t, inAir.Position.Longitude, -122.379)

	assert.Equal(t, models.StatusOnTime, byNumber["UA2236"].Status)
	assert.Equal(t, models.StatusScheduled, byNumber["UA358"].Status)
	assert.Equal(t, models.StatusScheduled, byNumber["UA489"].Status)

	// no explicit date: id carries the search instant
	assert.Equal(t, "ua242-1762779300000", byNumber["UA242"].ID)
}

func TestGenerate_PastDateIsScheduled(t *testing.T) {
	now := time.Date(2025, 11, 10, 23, 0, 0, 0, time.UTC)
	flights := newTestGenerator(3, now).Generate("HOU", "LGA", now.AddDate(0, 0, -1))

	require.Len(t, flights, 4)
	for _, f := range flights {
		assert.Equal(t, models.StatusScheduled, f.Status)
		assert.Zero(t, f.Progress)
	}
}

func TestGenerate_UnknownRoute(t *testing.T) {
	now := time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)

	for seed := int64(1); seed <= 25; seed++ {
		flights := newTestGenerator(seed, now).Generate("abc", "xyz", now.AddDate(0, 0, 2))

		require.GreaterOrEqual(t, len(flights), 3)
		require.LessOrEqual(t, len(flights), 8)

		lo, hi := flights[0].Price, flights[0].Price
		for _, f := range flights {
			assert.Equal(t, "ABC", f.Origin)
			assert.Equal(t, "XYZ", f.Destination)
			assert.Equal(t, strings.ToLower(f.FlightNumber), f.ID)
			assert.Equal(t, models.StatusScheduled, f.Status)
			assert.Empty(t, f.DepartureTimezone)

			dep, err := time.Parse(models.DisplayTimeLayout, f.DepartureTime)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, dep.Hour(), 6)
			assert.Less(t, dep.Hour(), 22)
			assert.Contains(t, []int{0, 15, 30, 45}, dep.Minute())

			assert.Len(t, f.Aircraft.SeatMap, (f.Aircraft.Capacity/6)*6)
			assert.GreaterOrEqual(t, f.Price, 250)
			assert.LessOrEqual(t, f.Price, 1400)
			if f.Price < lo {
				lo = f.Price
			}
			if f.Price > hi {
				hi = f.Price
			}
		}
		// one base price per route, jitter spans -50..+200
		assert.LessOrEqual(t, hi-lo, 250)

		for i := 1; i < len(flights); i++ {
			prev := displayClock(flights[i-1].DepartureTime)
			cur := displayClock(flights[i].DepartureTime)
			assert.False(t, cur.Before(prev), "flights not sorted")
		}
	}
}

func TestGenerate_UnknownDomesticRouteUsesDomesticCarriers(t *testing.T) {
	now := time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)
	domestic := map[string]bool{}
	for _, a := range catalog.DomesticAirlines() {
		domestic[a.Name] = true
	}

	for seed := int64(1); seed <= 20; seed++ {
		for _, f := range newTestGenerator(seed, now).Generate("DEN", "BOS", now.AddDate(0, 0, 1)) {
			assert.True(t, domestic[f.Airline], f.Airline)
			assert.Equal(t, "America/Denver", f.DepartureTimezone)
		}
	}
}

func TestGenerate_RandomFieldsVaryAcrossCalls(t *testing.T) {
	now := time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)
	g := NewGenerator(entropy.New(), WithClock(fixedClock(now)), WithLocation(time.UTC))

	a := g.Generate("SFO", "IAH", now.AddDate(0, 0, 1))
	b := g.Generate("SFO", "IAH", now.AddDate(0, 0, 1))

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].FlightNumber, b[i].FlightNumber)
		assert.Equal(t, a[i].Price, b[i].Price)
	}
	assert.NotEqual(t, a, b)
}

func TestSortByDisplayTime(t *testing.T) {
	flights := []models.FlightRecord{
		{FlightNumber: "late", DepartureTime: "11:55 PM"},
		{FlightNumber: "morning", DepartureTime: "06:00 AM"},
		{FlightNumber: "noon", DepartureTime: "12:30 PM"},
		{FlightNumber: "overnight", DepartureTime: "12:05 AM"},
	}

	SortByDisplayTime(flights)

	var order []string
	for _, f := range flights {
		order = append(order, f.FlightNumber)
	}
	assert.Equal(t, []string{"overnight", "morning", "noon", "late"}, order)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		hour    int
		minute  int
		wantErr bool
	}{
		{input: "06:00", hour: 6},
		{input: "23:55", hour: 23, minute: 55},
		{input: "9:40", hour: 9, minute: 40},
		{input: "24:00", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			hour, minute, err := parseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.minute, minute)
		})
	}
}

func TestFromSchedule_SkipsMalformedDepartureTime(t *testing.T) {
	now := time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)
	g := newTestGenerator(1, now)
	patterns := []models.SchedulePattern{
		{Airline: "United Airlines", FlightNumber: "UA1", DepartureTime: "7.15", Duration: 200, AircraftID: "b737-max9", Price: 300},
		{Airline: "United Airlines", FlightNumber: "UA2", DepartureTime: "07:15", Duration: 200, AircraftID: "b737-max9", Price: 300},
	}

	flights := g.fromSchedule("SFO", "IAH", patterns, now.AddDate(0, 0, 2), now, false)

	require.Len(t, flights, 1)
	assert.Equal(t, "UA2", flights[0].FlightNumber)
	assert.Equal(t, "07:15 AM", flights[0].DepartureTime)
}

func TestAirlinePrefix(t *testing.T) {
	assert.Equal(t, "UN", airlinePrefix("United Airlines"))
	assert.Equal(t, "DE", airlinePrefix("delta"))
	assert.Equal(t, "Q", airlinePrefix("q"))
	assert.Equal(t, "", airlinePrefix(""))
}
