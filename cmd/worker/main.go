package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/cx-tal-miterani/flightselect/internal/activities"
	"github.com/cx-tal-miterani/flightselect/internal/app"
	"github.com/cx-tal-miterani/flightselect/internal/config"
	"github.com/cx-tal-miterani/flightselect/internal/models"
	"github.com/cx-tal-miterani/flightselect/internal/workflows"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	tlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	temporalHost := cfg.TemporalHost
	if temporalHost == "" {
		temporalHost = config.DefaultTemporalHost
	}

	components, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize search", "error", err)
		os.Exit(1)
	}
	defer components.Close()

	// Connect to Temporal
	logger.Info("Connecting to Temporal...", "host", temporalHost)
	c, err := client.Dial(client.Options{
		HostPort: temporalHost,
		Logger:   tlog.NewStructuredLogger(logger),
	})
	if err != nil {
		logger.Error("Failed to connect to Temporal", "error", err)
		os.Exit(1)
	}
	defer c.Close()
	logger.Info("Connected to Temporal")

	w := worker.New(c, cfg.TemporalTaskQueue, worker.Options{})

	w.RegisterWorkflowWithOptions(workflows.FlightSearchWorkflow, workflow.RegisterOptions{Name: models.WorkflowFlightSearch})

	acts := activities.NewActivities(components.Resolver)
	w.RegisterActivityWithOptions(acts.FetchExternalFlights, activity.RegisterOptions{Name: models.ActivityFetchExternalFlights})
	w.RegisterActivityWithOptions(acts.ResolveLocalFlights, activity.RegisterOptions{Name: models.ActivityResolveLocalFlights})

	logger.Info("Starting Temporal worker...", "taskQueue", cfg.TemporalTaskQueue)
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Worker failed", "error", err)
		os.Exit(1)
	}
}
