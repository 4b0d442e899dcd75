// Package app assembles the search resolver from configuration. The API
// server and the Temporal worker build it the same way.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cx-tal-miterani/flightselect/internal/catalog"
	"github.com/cx-tal-miterani/flightselect/internal/config"
	"github.com/cx-tal-miterani/flightselect/internal/database"
	"github.com/cx-tal-miterani/flightselect/internal/entropy"
	"github.com/cx-tal-miterani/flightselect/internal/provider"
	"github.com/cx-tal-miterani/flightselect/internal/service"
	"github.com/cx-tal-miterani/flightselect/internal/synth"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Components are the wired search dependencies
type Components struct {
	Fetcher  *provider.AviationStack
	Resolver *service.Resolver

	pool *pgxpool.Pool
}

// Close releases the database pool, if any.
func (c *Components) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}

// Build wires the fetcher, curated list, synthesizer and resolver.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	src := entropy.New()
	c := &Components{}

	curated, err := catalog.EmbeddedCuratedFlights()
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseURL != "" {
		logger.Info("Connecting to database...")
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		c.pool = pool

		curated, err = database.NewRepository(pool).LoadCuratedFlights(ctx, curated)
		if err != nil {
			c.Close()
			return nil, err
		}
		logger.Info("Loaded curated flights from database", "count", len(curated))
	}

	list, err := catalog.NewCuratedList(curated, src)
	if err != nil {
		c.Close()
		return nil, err
	}

	if cfg.AviationStack.APIKey == "" {
		logger.Warn("AVIATION_STACK_API_KEY not set; book searches will use local flights only")
	}
	c.Fetcher = provider.NewAviationStack(cfg.AviationStack, src, logger)

	generator := synth.NewGenerator(src, synth.WithLocation(cfg.Location), synth.WithLogger(logger))
	c.Resolver = service.NewResolver(c.Fetcher, generator, list, cfg.Location, logger)

	return c, nil
}
