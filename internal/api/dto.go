package api

import "github.com/pdiddy/litsearch/internal/record"

// SearchRequest is the request body for running a search in a session.
// Year bounds are optional; a missing end is unbounded on that side.
type SearchRequest struct {
	Query    string `json:"query"`
	YearFrom *int   `json:"year_from,omitempty"`
	YearTo   *int   `json:"year_to,omitempty"`
	OnlyDOI  bool   `json:"only_doi,omitempty"`
}

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	ID string `json:"id"`
}

// MetaResponse describes the loaded corpus.
type MetaResponse struct {
	Records  int    `json:"records"`
	Key      string `json:"key"`
	HasYears bool   `json:"has_years"`
	YearMin  int    `json:"year_min,omitempty"`
	YearMax  int    `json:"year_max,omitempty"`
}

// ResultsResponse wraps the session's current results. Ran is false
// before the first search; Total is the full match count while Results
// is capped at the display limit.
type ResultsResponse struct {
	Ran     bool          `json:"ran"`
	Total   int           `json:"total"`
	Shown   int           `json:"shown"`
	Results []record.Card `json:"results"`
}

// SavedResponse wraps the saved records in export order.
type SavedResponse struct {
	Count   int           `json:"count"`
	Results []record.Card `json:"results"`
}

// ToggleResponse reports a record's saved state after a toggle.
type ToggleResponse struct {
	ID    string `json:"id"`
	Saved bool   `json:"saved"`
}
