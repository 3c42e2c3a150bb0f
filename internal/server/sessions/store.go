// Package sessions keeps server-side login sessions keyed by an opaque id
// that travels in the session cookie.
package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/pizzastore/internal/common"
)

type Session struct {
	ID        string
	UserID    int64
	Role      string
	Email     string
	CreatedAt time.Time
	LastSeen  time.Time
}

// Store is an in-memory session table. Sessions idle for longer than the
// configured timeout are treated as missing and dropped on access.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idle     time.Duration
	now      func() time.Time
}

// NewStore returns a Store. idle <= 0 disables expiry.
func NewStore(idle time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		idle:     idle,
		now:      time.Now,
	}
}

// Create starts a new session for the given account.
func (s *Store) Create(_ context.Context, userID int64, role, email string) (Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Session{}, err
	}

	now := s.now()
	sess := &Session{
		ID:        id.String(),
		UserID:    userID,
		Role:      role,
		Email:     email,
		CreatedAt: now,
		LastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return *sess, nil
}

// Get returns the session and marks it as seen, or common.ErrorNotFound.
func (s *Store) Get(_ context.Context, id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, common.ErrorNotFound
	}

	now := s.now()
	if s.idle > 0 && now.Sub(sess.LastSeen) > s.idle {
		delete(s.sessions, id)
		return Session{}, common.ErrorNotFound
	}
	sess.LastSeen = now
	return *sess, nil
}

// Delete is a no-op for unknown ids.
func (s *Store) Delete(_ context.Context, id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports how many sessions are held, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
