package workflows

import (
	"time"

	"github.com/cx-tal-miterani/flightselect/internal/models"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const (
	// FetchTimeout bounds a single provider call
	FetchTimeout = 30 * time.Second
	// ResolveTimeout bounds the local curated/synthesizer step
	ResolveTimeout = 10 * time.Second
)

// FlightSearchWorkflow runs the search fallback chain. Provider failures
// never fail the workflow; they fall through to the local tiers.
func FlightSearchWorkflow(ctx workflow.Context, req models.SearchRequest) (*models.SearchResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Flight search workflow started", "mode", req.Mode, "origin", req.Origin, "destination", req.Destination)

	noRetry := &temporal.RetryPolicy{MaximumAttempts: 1}

	if req.Mode == models.SearchModeBook && req.HasRoute() {
		fetchCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
			StartToCloseTimeout: FetchTimeout,
			RetryPolicy:         noRetry,
		})

		var external models.FetchExternalFlightsResult
		err := workflow.ExecuteActivity(fetchCtx, models.ActivityFetchExternalFlights, models.FetchExternalFlightsInput{
			Origin:      req.Origin,
			Destination: req.Destination,
		}).Get(fetchCtx, &external)

		switch {
		case err != nil:
			logger.Warn("External fetch activity failed", "error", err)
		case external.Error != "":
			logger.Warn("External provider unavailable", "error", external.Error)
		case len(external.Flights) > 0:
			logger.Info("Flight search resolved", "source", models.SourceExternal, "count", len(external.Flights))
			return &models.SearchResult{Flights: external.Flights, Source: models.SourceExternal}, nil
		}
	}

	resolveCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: ResolveTimeout,
		RetryPolicy:         noRetry,
	})

	var result models.SearchResult
	if err := workflow.ExecuteActivity(resolveCtx, models.ActivityResolveLocalFlights, req).Get(resolveCtx, &result); err != nil {
		logger.Error("Local resolution failed", "error", err)
		return nil, err
	}

	logger.Info("Flight search resolved", "source", result.Source, "count", len(result.Flights))
	return &result, nil
}
