// Package session holds the signed-in user of the running client and lets
// other parts of the program react when it changes.
//
// A Store is either Anonymous (Current returns nil) or Authenticated. It is
// written by the auth service on login, registration and logout, and read by
// the REPL prompt. Nothing is persisted: a new process starts Anonymous.
package session

import (
	"sync"

	"github.com/dmitrijs2005/pizzastore/internal/client/models"
)

// Observer is called with a private copy of the current user, or nil.
// Observers run synchronously under the store's notification lock and must
// not call Set or Clear.
type Observer func(user *models.CurrentUser)

type Store struct {
	mu        sync.RWMutex
	notify    sync.Mutex
	user      *models.CurrentUser
	observers map[uint64]Observer
	nextID    uint64
}

func NewStore() *Store {
	return &Store{observers: make(map[uint64]Observer)}
}

// Current returns a copy of the signed-in user, or nil when Anonymous.
func (s *Store) Current() *models.CurrentUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.user)
}

// Authenticated reports whether a user is set.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Set replaces the current value wholesale and notifies every observer.
func (s *Store) Set(user *models.CurrentUser) {
	s.notify.Lock()
	defer s.notify.Unlock()

	s.mu.Lock()
	s.user = clone(user)
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(clone(user))
	}
}

// Clear returns the store to Anonymous.
func (s *Store) Clear() {
	s.Set(nil)
}

// Observe registers fn, calls it once with the current value and then after
// every Set. The returned func unregisters it.
func (s *Store) Observe(fn Observer) (cancel func()) {
	s.notify.Lock()
	defer s.notify.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	current := clone(s.user)
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

func clone(u *models.CurrentUser) *models.CurrentUser {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
