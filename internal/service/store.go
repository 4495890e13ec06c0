package service

import (
	"sync"

	"github.com/ndewijer/portfolio-tracker/internal/model"
)

// Observer is called with the new state after every commit.
type Observer func(model.PersistedState)

// Store owns the portfolio state of one application context.
//
// The transaction history is the source of truth and the holdings are its
// projection. Each commit replaces the whole state at once; there is no
// fine-grained mutation. Persistence is not part of the store: callers save
// explicitly after a successful commit.
type Store struct {
	mu        sync.RWMutex
	state     model.PersistedState
	observers map[int]Observer
	nextID    int
}

// NewStore creates a Store holding the given initial state.
func NewStore(initial model.PersistedState) *Store {
	return &Store{
		state:     cloneState(initial),
		observers: make(map[int]Observer),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() model.PersistedState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Commit replaces the state and notifies observers outside the lock.
func (s *Store) Commit(next model.PersistedState) {
	s.mu.Lock()
	s.state = cloneState(next)
	observers := make([]Observer, 0, len(s.observers))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.observers[id]; ok {
			observers = append(observers, fn)
		}
	}
	snapshot := cloneState(s.state)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(cloneState(snapshot))
	}
}

// Subscribe registers fn for commit notifications in registration order.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn Observer) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}
