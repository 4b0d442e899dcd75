package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/cx-tal-miterani/flightselect/internal/config"
	"github.com/cx-tal-miterani/flightselect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EmbeddedCuratedList(t *testing.T) {
	cfg := &config.Config{Location: time.UTC}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := Build(context.Background(), cfg, logger)
	require.NoError(t, err)
	defer c.Close()

	require.NotNil(t, c.Fetcher)
	require.NotNil(t, c.Resolver)

	// without an API key the provider tier is skipped
	result, err := c.Resolver.Search(context.Background(), models.SearchRequest{
		Mode:        models.SearchModeBook,
		Origin:      "JFK",
		Destination: "LHR",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SourceCurated, result.Source)
	assert.Len(t, result.Flights, 2)

	result, err = c.Resolver.Search(context.Background(), models.SearchRequest{
		Mode:        models.SearchModeBook,
		Origin:      "SFO",
		Destination: "IAH",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SourceGenerated, result.Source)
	assert.Len(t, result.Flights, 7)
}

func TestBuild_BadDatabaseURL(t *testing.T) {
	cfg := &config.Config{Location: time.UTC, DatabaseURL: "not a url://"}

	_, err := Build(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
