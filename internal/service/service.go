package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cx-tal-miterani/flightselect/internal/models"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDate    = errors.New("invalid search date")
	ErrFlightNotFound = errors.New("flight not found")
)

// FlightService defines the search service interface
type FlightService interface {
	Search(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error)
}

// FlightLookup finds a single curated flight
type FlightLookup interface {
	FlightByNumber(ctx context.Context, number string) (*models.FlightRecord, error)
}

// Fetcher loads real flights for a route from an external provider
type Fetcher interface {
	Fetch(ctx context.Context, origin, destination string) ([]models.FlightRecord, error)
}

// Synthesizer produces flights for a route locally
type Synthesizer interface {
	Generate(origin, destination string, date time.Time) []models.FlightRecord
}

// CuratedSource serves the curated flight list
type CuratedSource interface {
	Flights() []models.FlightRecord
}

// Resolver runs the fallback chain: provider, curated list, synthesizer.
// It keeps no state between calls.
type Resolver struct {
	fetcher Fetcher
	synth   Synthesizer
	curated CuratedSource
	loc     *time.Location
	logger  *slog.Logger
}

// NewResolver creates a Resolver. fetcher may be nil, in which case book
// searches go straight to the local tiers.
func NewResolver(fetcher Fetcher, synth Synthesizer, curated CuratedSource, loc *time.Location, logger *slog.Logger) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		fetcher: fetcher,
		synth:   synth,
		curated: curated,
		loc:     loc,
		logger:  logger,
	}
}

// Search resolves req against every tier in order.
func (r *Resolver) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	if req.Mode == models.SearchModeBook && req.HasRoute() {
		flights, err := r.FetchExternal(ctx, req.Origin, req.Destination)
		if err != nil {
			r.logger.Warn("External fetch failed, falling back",
				"origin", req.Origin,
				"destination", req.Destination,
				"error", err,
			)
		} else if len(flights) > 0 {
			return &models.SearchResult{Flights: flights, Source: models.SourceExternal}, nil
		}
	}
	return r.ResolveLocal(req)
}

// FetchExternal asks the provider for flights on the route. A missing
// fetcher yields no flights and no error.
func (r *Resolver) FetchExternal(ctx context.Context, origin, destination string) ([]models.FlightRecord, error) {
	if r.fetcher == nil {
		return nil, nil
	}
	flights, err := r.fetcher.Fetch(ctx, origin, destination)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("External flights", "origin", origin, "destination", destination, "count", len(flights))
	return flights, nil
}

// ResolveLocal answers req from the curated list and the synthesizer.
func (r *Resolver) ResolveLocal(req models.SearchRequest) (*models.SearchResult, error) {
	switch req.Mode {
	case models.SearchModeTrack:
		return r.track(req), nil
	case models.SearchModeBook:
		if !req.HasRoute() {
			flights := filter(r.curated.Flights(), func(f models.FlightRecord) bool {
				return req.Airline == "" || containsFold(f.Airline, req.Airline)
			})
			return &models.SearchResult{Flights: flights, Source: models.SourceCurated}, nil
		}
		return r.book(req)
	default:
		return nil, fmt.Errorf("unsupported search mode %q", req.Mode)
	}
}

func (r *Resolver) book(req models.SearchRequest) (*models.SearchResult, error) {
	curated := filter(r.curated.Flights(), func(f models.FlightRecord) bool {
		return strings.EqualFold(f.Origin, strings.TrimSpace(req.Origin)) &&
			strings.EqualFold(f.Destination, strings.TrimSpace(req.Destination))
	})
	if len(curated) > 0 {
		return &models.SearchResult{Flights: curated, Source: models.SourceCurated}, nil
	}

	date, err := r.parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	flights := r.synth.Generate(req.Origin, req.Destination, date)
	r.logger.Info("Synthesized flights", "origin", req.Origin, "destination", req.Destination, "count", len(flights))
	return &models.SearchResult{Flights: flights, Source: models.SourceGenerated}, nil
}

func (r *Resolver) track(req models.SearchRequest) *models.SearchResult {
	number := strings.TrimSpace(req.FlightNumber)
	flights := filter(r.curated.Flights(), func(f models.FlightRecord) bool {
		if number != "" {
			return containsFold(f.FlightNumber, number)
		}
		return f.CurrentStatus() == models.StatusInAir
	})
	return &models.SearchResult{Flights: flights, Source: models.SourceCurated}
}

// FlightByNumber returns the curated flight whose number matches exactly,
// ignoring case.
func (r *Resolver) FlightByNumber(ctx context.Context, number string) (*models.FlightRecord, error) {
	number = strings.TrimSpace(number)
	if number != "" {
		for _, f := range r.curated.Flights() {
			if strings.EqualFold(f.FlightNumber, number) {
				return &f, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrFlightNotFound, number)
}

// parseDate reads a YYYY-MM-DD date in the resolver's zone. Empty means today.
func (r *Resolver) parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.ParseInLocation(dateLayout, s, r.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

func filter(flights []models.FlightRecord, keep func(models.FlightRecord) bool) []models.FlightRecord {
	out := make([]models.FlightRecord, 0, len(flights))
	for _, f := range flights {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
