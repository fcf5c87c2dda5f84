// Package shell holds the application shell state shared with the function
// app panel: which account settings page is selected and whether the account
// settings overlay is open.
package shell

import (
	"sync"

	"fnctl/pkg/logging"
)

// Account settings menu keys.
const (
	MenuProfile       = "profile"
	MenuNotifications = "notifications"
)

// State is a snapshot of the shell.
type State struct {
	AccountSettingsOpen bool
	SelectedMenu        string
}

// Store guards the shell state.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore returns a shell store with the profile page selected.
func NewStore() *Store {
	return &Store{state: State{SelectedMenu: MenuProfile}}
}

// SelectAccountSettingsMenu selects the page shown when account settings open.
func (s *Store) SelectAccountSettingsMenu(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedMenu = key
	logging.Debug("Shell", "account settings menu %s selected", key)
}

// ToggleAccountSettings opens or closes the account settings overlay.
func (s *Store) ToggleAccountSettings() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AccountSettingsOpen = !s.state.AccountSettingsOpen
}

// OpenNotificationSettings jumps straight to the notification settings page.
func (s *Store) OpenNotificationSettings() {
	s.SelectAccountSettingsMenu(MenuNotifications)
	s.ToggleAccountSettings()
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
