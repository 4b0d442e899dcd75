// Package provider fetches real flights from the AviationStack API and
// normalizes them into flight records.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cx-tal-miterani/flightselect/internal/entropy"
	"github.com/cx-tal-miterani/flightselect/internal/models"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "http://api.aviationstack.com/v1"
	DefaultTimeout = 15 * time.Second

	resultLimit = 100
)

// Config holds AviationStack client settings
type Config struct {
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int // 0 = unlimited
}

// AviationStack is the external flight fetcher
type AviationStack struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	src        entropy.Source
	logger     *slog.Logger
}

// NewAviationStack creates a fetcher. An empty API key is accepted; every
// Fetch then fails with ErrMissingAPIKey.
func NewAviationStack(cfg Config, src entropy.Source, logger *slog.Logger) *AviationStack {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60), cfg.RequestsPerMinute)
	}

	return &AviationStack{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: limiter,
		src:     src,
		logger:  logger,
	}
}

// Fetch returns provider flights departing origin for destination.
func (a *AviationStack) Fetch(ctx context.Context, origin, destination string) ([]models.FlightRecord, error) {
	if a.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if !a.limiter.Allow() {
		return nil, ErrRateLimited
	}

	params := url.Values{
		"access_key": {a.apiKey},
		"dep_iata":   {strings.ToUpper(origin)},
		"arr_iata":   {strings.ToUpper(destination)},
		"limit":      {fmt.Sprint(resultLimit)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/flights?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetchFailed, err)
	}

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	var raw asResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&raw)

	if decodeErr == nil && raw.Error != nil {
		return nil, raw.Error.toAPIError()
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", ErrFetchFailed, resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: decode error: %v", ErrFetchFailed, decodeErr)
	}

	flights := make([]models.FlightRecord, 0, len(raw.Data))
	for _, f := range raw.Data {
		flights = append(flights, f.toRecord(a.src))
	}

	a.logger.Info("AviationStack flights fetched",
		"origin", origin,
		"destination", destination,
		"count", len(flights),
		"duration", time.Since(start),
	)
	return flights, nil
}
