package activities

import (
	"context"

	"github.com/cx-tal-miterani/flightselect/internal/models"
	"go.temporal.io/sdk/activity"
)

// Resolver is the part of the search resolver the activities drive
type Resolver interface {
	FetchExternal(ctx context.Context, origin, destination string) ([]models.FlightRecord, error)
	ResolveLocal(req models.SearchRequest) (*models.SearchResult, error)
}

// Activities holds the dependencies of the flight search activities
type Activities struct {
	resolver Resolver
}

// NewActivities creates a new Activities instance
func NewActivities(resolver Resolver) *Activities {
	return &Activities{resolver: resolver}
}

// FetchExternalFlights asks the provider for flights on a route. Provider
// errors are reported in the result so the workflow can fall through.
func (a *Activities) FetchExternalFlights(ctx context.Context, input models.FetchExternalFlightsInput) (*models.FetchExternalFlightsResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Fetching external flights", "origin", input.Origin, "destination", input.Destination)

	flights, err := a.resolver.FetchExternal(ctx, input.Origin, input.Destination)
	if err != nil {
		logger.Warn("External fetch failed", "error", err)
		return &models.FetchExternalFlightsResult{Error: err.Error()}, nil
	}

	logger.Info("External flights fetched", "count", len(flights))
	return &models.FetchExternalFlightsResult{Flights: flights}, nil
}

// ResolveLocalFlights answers a search from the curated list and the synthesizer
func (a *Activities) ResolveLocalFlights(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	logger := activity.GetLogger(ctx)

	result, err := a.resolver.ResolveLocal(req)
	if err != nil {
		logger.Error("Local resolution failed", "error", err)
		return nil, err
	}

	logger.Info("Local flights resolved", "source", result.Source, "count", len(result.Flights))
	return result, nil
}
