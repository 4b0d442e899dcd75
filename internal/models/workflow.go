package models

// Temporal names shared by the API server and the worker
const (
	DefaultTaskQueue = "flight-search-queue"

	WorkflowFlightSearch = "FlightSearchWorkflow"

	ActivityFetchExternalFlights = "FetchExternalFlights"
	ActivityResolveLocalFlights  = "ResolveLocalFlights"
)

// FetchExternalFlightsInput is the input for the external fetch activity
type FetchExternalFlightsInput struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// FetchExternalFlightsResult carries provider flights, or in Error the
// reason the provider could not serve them.
type FetchExternalFlightsResult struct {
	Flights []FlightRecord `json:"flights"`
	Error   string         `json:"error,omitempty"`
}
