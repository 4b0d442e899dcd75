package models

import "strings"

type SearchMode string

const (
	SearchModeBook  SearchMode = "book"
	SearchModeTrack SearchMode = "track"
)

// SearchSource names the data tier that produced a result
type SearchSource string

const (
	SourceExternal  SearchSource = "external"
	SourceCurated   SearchSource = "curated"
	SourceGenerated SearchSource = "generated"
)

// SearchRequest is the search trigger sent by the UI
type SearchRequest struct {
	Mode         SearchMode `json:"mode" validate:"required,oneof=book track"`
	Origin       string     `json:"origin,omitempty" validate:"omitempty,alpha,len=3"`
	Destination  string     `json:"destination,omitempty" validate:"omitempty,alpha,len=3"`
	Date         string     `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Airline      string     `json:"airline,omitempty" validate:"omitempty,max=64"`
	FlightNumber string     `json:"flightNumber,omitempty" validate:"omitempty,max=12"`
}

// HasRoute reports whether both route endpoints were supplied.
func (r SearchRequest) HasRoute() bool {
	return strings.TrimSpace(r.Origin) != "" && strings.TrimSpace(r.Destination) != ""
}

// SearchResult is the resolved flight list
type SearchResult struct {
	Flights []FlightRecord `json:"flights"`
	Source  SearchSource   `json:"source"`
}
