package synth

import (
	"fmt"
	"math"
	"time"

	"github.com/cx-tal-miterani/flightselect/internal/entropy"
	"github.com/cx-tal-miterani/flightselect/internal/models"
)

const (
	// OnTimeWindow is how long before departure a flight shows On Time.
	OnTimeWindow = 30 * time.Minute

	minCruiseAltitude = 32000
	maxCruiseAltitude = 41000
	minCruiseSpeed    = 480
	maxCruiseSpeed    = 600
)

// Window is the scheduled span of one flight
type Window struct {
	Departure time.Time
	Arrival   time.Time
	Duration  int // minutes
	Distance  int // miles
}

// DeriveStatus computes the live-tracking fields of a flight at now.
// Comparisons are strict: at exactly the arrival instant a flight is
// still In Air.
func DeriveStatus(src entropy.Source, now time.Time, w Window) models.LiveStatus {
	switch {
	case now.After(w.Arrival):
		return models.LiveStatus{
			Status:        models.StatusLanded,
			Progress:      100,
			TimeRemaining: "Arrived",
		}
	case now.After(w.Departure):
		elapsed := now.Sub(w.Departure).Minutes()
		progress := 100
		if w.Duration > 0 {
			progress = int(math.Min(100, math.Floor(elapsed/float64(w.Duration)*100)))
		}
		remaining := float64(w.Duration) - elapsed
		return models.LiveStatus{
			Status:            models.StatusInAir,
			Progress:          progress,
			CurrentAltitude:   entropy.IntBetween(src, minCruiseAltitude, maxCruiseAltitude),
			CurrentSpeed:      entropy.IntBetween(src, minCruiseSpeed, maxCruiseSpeed),
			DistanceRemaining: int(math.Floor(float64(w.Distance) * (1 - float64(progress)/100))),
			TimeRemaining:     formatRemaining(remaining),
		}
	case now.After(w.Departure.Add(-OnTimeWindow)):
		return scheduledStatus(models.StatusOnTime, w)
	default:
		return scheduledStatus(models.StatusScheduled, w)
	}
}

// scheduledStatus is the zero-telemetry state of a flight still on the
// ground; nothing has been flown yet so the whole distance remains.
func scheduledStatus(status models.FlightStatus, w Window) models.LiveStatus {
	return models.LiveStatus{
		Status:            status,
		DistanceRemaining: w.Distance,
	}
}

func formatRemaining(minutes float64) string {
	hours := int(math.Floor(minutes / 60))
	mins := int(math.Floor(math.Mod(minutes, 60)))
	return fmt.Sprintf("%dh %dm", hours, mins)
}
