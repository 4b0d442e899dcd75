package mocks

import (
	"context"
	"time"

	"github.com/cx-tal-miterani/flightselect/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockFlightService is a mock implementation of FlightService
type MockFlightService struct {
	mock.Mock
}

func (m *MockFlightService) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SearchResult), args.Error(1)
}

// MockFlightLookup is a mock implementation of FlightLookup
type MockFlightLookup struct {
	mock.Mock
}

func (m *MockFlightLookup) FlightByNumber(ctx context.Context, number string) (*models.FlightRecord, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlightRecord), args.Error(1)
}

// MockFetcher is a mock implementation of Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, origin, destination string) ([]models.FlightRecord, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FlightRecord), args.Error(1)
}

// MockSynthesizer is a mock implementation of Synthesizer
type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) Generate(origin, destination string, date time.Time) []models.FlightRecord {
	args := m.Called(origin, destination, date)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.FlightRecord)
}
