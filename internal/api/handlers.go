// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api exposes the search engine over HTTP. The corpus is loaded
// once and shared read-only; every other piece of state lives in a
// per-session object addressed by a session id, so concurrent sessions
// stay isolated by construction.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pdiddy/litsearch/internal/index"
	"github.com/pdiddy/litsearch/internal/record"
	"github.com/pdiddy/litsearch/internal/search"
	"github.com/pdiddy/litsearch/internal/session"
)

// exportFilename is the suggested download name for the saved-records
// document, without extension.
const exportFilename = "saved-papers"

// Handler serves the HTTP API over one immutable index.
type Handler struct {
	ix       *index.Index
	sessions *Sessions
	maxShown int
}

// NewHandler creates a Handler. maxShown caps how many result cards a
// response carries (0 = no cap); the underlying result lists are never
// truncated.
func NewHandler(ix *index.Index, maxShown int) *Handler {
	return &Handler{
		ix:       ix,
		sessions: NewSessions(),
		maxShown: maxShown,
	}
}

// Meta reports corpus statistics for filter UIs.
func (h *Handler) Meta(w http.ResponseWriter, r *http.Request) {
	resp := MetaResponse{
		Records: len(h.ix.Records),
		Key:     h.ix.Key,
	}
	if lo, hi, ok := h.ix.YearBounds(); ok {
		resp.HasYears = true
		resp.YearMin = lo
		resp.YearMax = hi
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateSession registers a new session.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id := h.sessions.Create()
	slog.Info("session created", slog.String("session", id))
	writeJSON(w, http.StatusCreated, SessionResponse{ID: id})
}

// DeleteSession discards a session.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := h.sessions.Delete(id); err != nil {
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
		return
	}
	slog.Info("session deleted", slog.String("session", id))
	w.WriteHeader(http.StatusNoContent)
}

// Search runs a query in the session. An empty query is a warning: the
// session keeps whatever state it had and the client gets a 400.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	filters := search.Filters{OnlyDOI: req.OnlyDOI}
	if req.YearFrom != nil || req.YearTo != nil {
		years := &search.YearRange{From: math.MinInt32, To: math.MaxInt32}
		if req.YearFrom != nil {
			years.From = *req.YearFrom
		}
		if req.YearTo != nil {
			years.To = *req.YearTo
		}
		filters.Years = years
	}

	var resp ResultsResponse
	err := h.sessions.Do(id, func(s *session.Session) error {
		if err := s.Run(h.ix, req.Query, filters); err != nil {
			return err
		}
		resp = h.resultsPayload(s, h.maxShown)
		return nil
	})
	switch {
	case errors.Is(err, ErrUnknownSession):
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
		return
	case errors.Is(err, search.ErrEmptyQuery):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}

	slog.Info("search run",
		slog.String("session", id),
		slog.String("query", req.Query),
		slog.Int("matches", resp.Total))
	writeJSON(w, http.StatusOK, resp)
}

// Results returns the session's current results. A limit query parameter
// overrides the configured display cap for this response only.
func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	limit := h.maxShown
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, errorBody(fmt.Sprintf("invalid limit %q", raw)))
			return
		}
		limit = n
	}

	var resp ResultsResponse
	err := h.sessions.Do(id, func(s *session.Session) error {
		resp = h.resultsPayload(s, limit)
		return nil
	})
	if errors.Is(err, ErrUnknownSession) {
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ClearResults returns the session to its idle state. Saved ids survive.
func (h *Handler) ClearResults(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	err := h.sessions.Do(id, func(s *session.Session) error {
		s.Clear()
		return nil
	})
	if errors.Is(err, ErrUnknownSession) {
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleSave flips the saved state of a record id.
func (h *Handler) ToggleSave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	recordID := chi.URLParam(r, "recordID")

	var resp ToggleResponse
	err := h.sessions.Do(id, func(s *session.Session) error {
		s.ToggleSave(recordID)
		resp = ToggleResponse{ID: recordID, Saved: s.Saved().Contains(recordID)}
		return nil
	})
	if errors.Is(err, ErrUnknownSession) {
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Saved returns the saved records in export order.
func (h *Handler) Saved(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	var resp SavedResponse
	err := h.sessions.Do(id, func(s *session.Session) error {
		saved := session.ExportSaved(s.Saved(), h.ix)
		cards := make([]record.Card, len(saved))
		for i, rec := range saved {
			cards[i] = record.NewCard(rec, true)
		}
		resp = SavedResponse{Count: s.Saved().Len(), Results: cards}
		return nil
	})
	if errors.Is(err, ErrUnknownSession) {
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ClearSaved empties the session's save set. Query state survives.
func (h *Handler) ClearSaved(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	err := h.sessions.Do(id, func(s *session.Session) error {
		s.ClearSaved()
		return nil
	})
	if errors.Is(err, ErrUnknownSession) {
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export streams the saved-records document as a download. format=yaml
// selects YAML; the default is JSON.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	format := r.URL.Query().Get("format")

	var doc session.Document
	err := h.sessions.Do(id, func(s *session.Session) error {
		doc = s.Export(h.ix)
		return nil
	})
	if errors.Is(err, ErrUnknownSession) {
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
		return
	}

	switch format {
	case "", "json":
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.json", exportFilename))
		if err := doc.WriteJSON(w); err != nil {
			slog.Error("export failed", slog.String("session", id), slog.String("error", err.Error()))
		}
	case "yaml":
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.yaml", exportFilename))
		if err := doc.WriteYAML(w); err != nil {
			slog.Error("export failed", slog.String("session", id), slog.String("error", err.Error()))
		}
	default:
		writeJSON(w, http.StatusBadRequest, errorBody(fmt.Sprintf("unsupported format %q: use json or yaml", format)))
	}
}

// resultsPayload projects the session's results into response cards,
// applying the display cap. The stored result list is left intact.
func (h *Handler) resultsPayload(s *session.Session, limit int) ResultsResponse {
	results := s.Results()
	shown := results
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	cards := make([]record.Card, len(shown))
	for i, rec := range shown {
		rid, _ := record.ID(rec)
		cards[i] = record.NewCard(rec, s.Saved().Contains(rid))
	}

	return ResultsResponse{
		Ran:     s.HasResults(),
		Total:   len(results),
		Shown:   len(cards),
		Results: cards,
	}
}
