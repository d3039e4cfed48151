// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the per-user mutable state of a search session:
// the last executed query with its results, and the set of saved record
// ids. One Session is constructed per user session and never shared; the
// record collection it queries is immutable and safely shared across any
// number of sessions.
package session

import (
	"github.com/pdiddy/litsearch/internal/index"
	"github.com/pdiddy/litsearch/internal/search"
	"github.com/pdiddy/litsearch/pkg/types"
)

// QueryState is the last executed query, the filters it ran with, and
// the ordered results it produced. Ran distinguishes "no search yet"
// from "a search that matched nothing".
type QueryState struct {
	Query   string
	Filters search.Filters
	Results []types.Record
	Ran     bool
}

// Session owns one user's QueryState and SaveSet. The two are cleared
// independently: clearing results never touches saved ids and vice versa.
type Session struct {
	saves *SaveSet
	state QueryState
}

// New returns a session with no query run and nothing saved.
func New() *Session {
	return &Session{saves: NewSaveSet()}
}

// Run executes a search and stores the query, filters, and results. On
// an empty query it returns search.ErrEmptyQuery and leaves the session
// exactly as it was: a failed run is a warning, not a transition.
// Re-running with unchanged query and filters stores identical results.
func (s *Session) Run(ix *index.Index, rawQuery string, f search.Filters) error {
	results, err := search.Search(ix.Records, rawQuery, f)
	if err != nil {
		return err
	}
	s.state = QueryState{
		Query:   rawQuery,
		Filters: f,
		Results: results,
		Ran:     true,
	}
	return nil
}

// Rerun re-executes the stored query against ix, replacing the stored
// results. It is a no-op when no search has run.
func (s *Session) Rerun(ix *index.Index) error {
	if !s.state.Ran {
		return nil
	}
	return s.Run(ix, s.state.Query, s.state.Filters)
}

// Clear discards the stored query, filters, and results, returning the
// session to its idle state. The save set is untouched.
func (s *Session) Clear() {
	s.state = QueryState{}
}

// HasResults reports whether a search has been run (even one that
// matched nothing).
func (s *Session) HasResults() bool {
	return s.state.Ran
}

// State returns a copy of the current query state. The Results slice is
// shared with the session; callers must not mutate it.
func (s *Session) State() QueryState {
	return s.state
}

// Results returns the stored result list in source order, or nil before
// the first run.
func (s *Session) Results() []types.Record {
	return s.state.Results
}

// ToggleSave flips the saved state of a record id.
func (s *Session) ToggleSave(id string) {
	s.saves.Toggle(id)
}

// Saved returns the session's save set.
func (s *Session) Saved() *SaveSet {
	return s.saves
}

// ClearSaved empties the save set. Query state is untouched.
func (s *Session) ClearSaved() {
	s.saves.Clear()
}
