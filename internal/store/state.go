package store

import (
	"sort"

	"fnctl/internal/functionapp"
)

// Status is the fetch lifecycle of the function app list.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusError   Status = "error"
)

// State is an immutable snapshot of the function app slice. Reduce never
// mutates a State it was given, so snapshots can be shared freely.
type State struct {
	ProjectName string
	Status      Status

	// Entities holds the apps keyed by name; IDs lists the keys sorted by name.
	Entities map[string]functionapp.FunctionApp
	IDs      []string

	Creating   bool
	Deleting   bool
	Publishing bool

	// CreateSuccess is set once a create completes and stays set until the
	// view consumes it.
	CreateSuccess bool

	FetchError   error
	CreateError  error
	DeleteError  error
	PublishError error
}

// InitialState returns the empty idle state.
func InitialState() State {
	return State{
		Status:   StatusIdle,
		Entities: map[string]functionapp.FunctionApp{},
		IDs:      []string{},
	}
}

// All returns the apps sorted by name.
func (s State) All() []functionapp.FunctionApp {
	out := make([]functionapp.FunctionApp, 0, len(s.IDs))
	for _, id := range s.IDs {
		out = append(out, s.Entities[id])
	}
	return out
}

// Get returns the app with the given name.
func (s State) Get(name string) (functionapp.FunctionApp, bool) {
	app, ok := s.Entities[name]
	return app, ok
}

// Len is the number of cached apps.
func (s State) Len() int {
	return len(s.IDs)
}

// Busy reports whether any operation is in flight.
func (s State) Busy() bool {
	return s.Status == StatusLoading || s.Creating || s.Deleting || s.Publishing
}

// withEntities returns a copy of s whose entity map can be modified.
func (s State) withEntities() State {
	entities := make(map[string]functionapp.FunctionApp, len(s.Entities))
	for k, v := range s.Entities {
		entities[k] = v
	}
	s.Entities = entities
	return s
}

// reindex rebuilds IDs from Entities in name order.
func (s State) reindex() State {
	ids := make([]string, 0, len(s.Entities))
	for k := range s.Entities {
		ids = append(ids, k)
	}
	sort.Strings(ids)
	s.IDs = ids
	return s
}
