package session

import (
	"errors"
	"sync"
	"time"

	"github.com/tiendc/go-deepcopy"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/aggregate"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
)

// Session is one uploaded workbook, parsed once and served from memory
// for the lifetime of the process. Nothing is persisted across restarts.
type Session struct {
	ID           string
	FileName     string
	FileHash     string
	CreatedAt    time.Time
	Records      []model.Record
	Tidy         []model.TidyRow
	Coefficients model.CoefficientTable
	Warnings     []string
	Cache        *aggregate.ResultCache
}

// Store is the in-memory session store.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Put registers a session.
func (s *Store) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// Get returns a session by ID.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, errors.New("session not found")
	}
	return sess, nil
}

// CopyData returns defensive copies of the session's tidy table and
// coefficient table, so each request pipeline operates on its own data.
// TidyRow is a value struct, so cloning the slice is a full copy; the
// coefficient table carries a map and is deep-copied.
func (s *Store) CopyData(id string) ([]model.TidyRow, model.CoefficientTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, model.CoefficientTable{}, errors.New("session not found")
	}

	tidy := append([]model.TidyRow(nil), sess.Tidy...)

	var coeffs model.CoefficientTable
	if err := deepcopy.Copy(&coeffs, sess.Coefficients); err != nil {
		return nil, model.CoefficientTable{}, err
	}
	if coeffs.Minutes == nil {
		coeffs.Minutes = map[string]float64{}
	}

	return tidy, coeffs, nil
}

// Delete removes a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
