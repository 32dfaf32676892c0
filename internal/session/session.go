// Package session tracks the grids owned by API clients. Every grid lives in
// a Session whose Do method serializes access, so two searches never run on
// the same grid at once.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridsearch/grid"
)

// Errors returned by Manager.
var (
	ErrNotFound = errors.New("session: not found")
	ErrTooLarge = errors.New("session: grid too large")
)

// Session owns one grid.
type Session struct {
	ID uuid.UUID

	mu   sync.Mutex
	grid *grid.Grid
}

// Do runs fn with exclusive access to the session's grid.
func (s *Session) Do(fn func(g *grid.Grid) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.grid)
}

// Replace swaps in g, e.g. after loading a layout of different dimensions.
// It must be called from inside Do.
func (s *Session) Replace(g *grid.Grid) {
	s.grid = g
}

// Manager is a concurrency-safe registry of sessions.
type Manager struct {
	maxDim int

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewManager returns a Manager that refuses grids larger than maxDim in
// either dimension.
func NewManager(maxDim int) *Manager {
	return &Manager{
		maxDim:   maxDim,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// MaxDim returns the largest allowed row or column count.
func (m *Manager) MaxDim() int { return m.maxDim }

// Create allocates a rows×cols grid under a fresh id.
func (m *Manager) Create(rows, cols int) (*Session, error) {
	if err := m.CheckDims(rows, cols); err != nil {
		return nil, err
	}
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}

	s := &Session{ID: uuid.New(), grid: g}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s, nil
}

// CheckDims returns ErrTooLarge when rows or cols exceed the limit.
func (m *Manager) CheckDims(rows, cols int) error {
	if rows > m.maxDim || cols > m.maxDim {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrTooLarge, rows, cols, m.maxDim)
	}
	return nil
}

// Get returns the session with the given id.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete drops a session.
func (m *Manager) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
