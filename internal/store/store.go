package store

import (
	"sync"
	"time"

	"fnctl/internal/functionapp"
	"fnctl/pkg/logging"
)

const subscriptionBuffer = 64

// Subscription delivers a snapshot after every dispatched action.
type Subscription struct {
	ID int64
	C  chan State

	mu     sync.RWMutex
	closed bool
}

// Close closes the subscription channel.
func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.C)
		s.closed = true
	}
}

// IsClosed returns whether the subscription is closed.
func (s *Subscription) IsClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Metrics tracks store usage.
type Metrics struct {
	Dispatched          int64
	LastDispatch        time.Time
	ActiveSubscriptions int
	DeliveredSnapshots  int64
	DroppedSnapshots    int64
}

// Store is the single-writer holder of the function app State.
type Store struct {
	mu            sync.RWMutex
	state         State
	subscriptions map[int64]*Subscription
	nextSubID     int64
	metrics       Metrics
}

// New creates a store in the initial state.
func New() *Store {
	return NewWithState(InitialState())
}

// NewWithState creates a store seeded with s.
func NewWithState(s State) *Store {
	return &Store{
		state:         s,
		subscriptions: make(map[int64]*Subscription),
	}
}

// Dispatch applies actions in order and returns the resulting state.
func (s *Store) Dispatch(actions ...Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, action := range actions {
		s.state = Reduce(s.state, action)
		s.metrics.Dispatched++
		s.metrics.LastDispatch = time.Now()
		logging.Debug("Store", "dispatched %s", action.ActionName())
		s.notify(s.state)
	}
	return s.state
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// All returns the cached apps sorted by name.
func (s *Store) All() []functionapp.FunctionApp {
	return s.Snapshot().All()
}

// Get returns a cached app by name.
func (s *Store) Get(name string) (functionapp.FunctionApp, bool) {
	return s.Snapshot().Get(name)
}

// Subscribe registers for snapshots. Slow subscribers miss intermediate
// snapshots rather than blocking dispatch.
func (s *Store) Subscribe() *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	sub := &Subscription{ID: s.nextSubID, C: make(chan State, subscriptionBuffer)}
	s.subscriptions[sub.ID] = sub
	s.metrics.ActiveSubscriptions++
	return sub
}

// Unsubscribe removes and closes a subscription.
func (s *Store) Unsubscribe(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.subscriptions[sub.ID]; exists {
		sub.Close()
		delete(s.subscriptions, sub.ID)
		s.metrics.ActiveSubscriptions--
	}
}

// Metrics returns a copy of the store metrics.
func (s *Store) Metrics() Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics
}

func (s *Store) notify(state State) {
	for id, sub := range s.subscriptions {
		if sub.IsClosed() {
			delete(s.subscriptions, id)
			s.metrics.ActiveSubscriptions--
			continue
		}
		select {
		case sub.C <- state:
			s.metrics.DeliveredSnapshots++
		default:
			s.metrics.DroppedSnapshots++
		}
	}
}
