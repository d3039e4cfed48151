// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/pdiddy/litsearch/internal/session"
)

// ErrUnknownSession is returned for operations on a session id that does
// not exist (never created, or already deleted).
var ErrUnknownSession = errors.New("unknown session")

// Sessions is the host-side session table. Each entry owns an
// independent session.Session; the per-entry mutex serializes the
// operations of one session so each user action stays a discrete,
// atomic state transition. No state is shared between sessions.
type Sessions struct {
	mu sync.Mutex
	m  map[string]*sessionEntry
}

type sessionEntry struct {
	mu sync.Mutex
	s  *session.Session
}

// NewSessions returns an empty session table.
func NewSessions() *Sessions {
	return &Sessions{m: make(map[string]*sessionEntry)}
}

// Create registers a fresh session and returns its id.
func (ss *Sessions) Create() string {
	id := uuid.NewString()
	ss.mu.Lock()
	ss.m[id] = &sessionEntry{s: session.New()}
	ss.mu.Unlock()
	return id
}

// Delete discards a session and all its state.
func (ss *Sessions) Delete(id string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if _, ok := ss.m[id]; !ok {
		return ErrUnknownSession
	}
	delete(ss.m, id)
	return nil
}

// Do runs fn with exclusive access to the session's state.
func (ss *Sessions) Do(id string, fn func(*session.Session) error) error {
	ss.mu.Lock()
	entry, ok := ss.m[id]
	ss.mu.Unlock()
	if !ok {
		return ErrUnknownSession
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.s)
}
