package navigation

import "sync/atomic"

// State is the application context consulted by the guard.
// The zero value is Uninitialized. Safe for concurrent use.
type State struct {
	initialized atomic.Bool
}

// NewState creates a navigation state with the given completion flag.
func NewState(initialized bool) *State {
	s := &State{}
	s.initialized.Store(initialized)
	return s
}

// Initialized reports whether the shell has been marked complete.
// A nil state reads as Uninitialized.
func (s *State) Initialized() bool {
	if s == nil {
		return false
	}
	return s.initialized.Load()
}

// MarkInitialized moves the state to Initialized. The transition is one-way.
//
// No route or survey handler in this module calls it; it exists for hosts
// that decide completion on their own.
func (s *State) MarkInitialized() {
	s.initialized.Store(true)
}
