package provider

import "errors"

var (
	ErrMissingAPIKey = errors.New("aviationstack: api key not configured")
	ErrFetchFailed   = errors.New("aviationstack: fetch failed")
	ErrRateLimited   = errors.New("aviationstack: local rate limit exceeded")
)

// APIError is an error object returned by the provider itself
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return "aviationstack: " + e.Message
	}
	return "aviationstack: " + e.Code + ": " + e.Message
}
