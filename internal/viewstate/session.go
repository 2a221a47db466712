package viewstate

import (
	"maps"
	"slices"

	"github.com/google/uuid"
)

// SessionState is an immutable snapshot of every registered view flag.
// Operations that change a flag return a new SessionState; the receiver is
// never modified, so older snapshots can be read from any goroutine.
type SessionState struct {
	id    string
	flags map[string]State
}

// Initialize registers the given flag names with every flag Collapsed.
// Duplicate or empty names are rejected with a *ConfigError.
func Initialize(names []string) (SessionState, error) {
	flags := make(map[string]State, len(names))
	for _, n := range names {
		if n == "" {
			return SessionState{}, &ConfigError{Reason: "flag name must not be empty"}
		}
		if _, dup := flags[n]; dup {
			return SessionState{}, &ConfigError{Name: n, Reason: "duplicate flag name"}
		}
		flags[n] = Collapsed
	}
	return SessionState{id: uuid.New().String(), flags: flags}, nil
}

// Toggle flips the named flag and returns the resulting snapshot.
func Toggle(s SessionState, name string) (SessionState, error) {
	cur, ok := s.flags[name]
	if !ok {
		return s, &UnknownFlagError{Name: name}
	}
	next := maps.Clone(s.flags)
	next[name] = cur.Flip()
	return SessionState{id: s.id, flags: next}, nil
}

// IsExpanded reports whether the named flag is Expanded.
func IsExpanded(s SessionState, name string) (bool, error) {
	st, err := s.State(name)
	if err != nil {
		return false, err
	}
	return st == Expanded, nil
}

// Reset starts a new session over the same flag names, all Collapsed.
func Reset(s SessionState) SessionState {
	flags := make(map[string]State, len(s.flags))
	for n := range s.flags {
		flags[n] = Collapsed
	}
	return SessionState{id: uuid.New().String(), flags: flags}
}

// ID returns the session identifier. It is stable across toggles.
func (s SessionState) ID() string {
	return s.id
}

// State returns the current state of the named flag.
func (s SessionState) State(name string) (State, error) {
	st, ok := s.flags[name]
	if !ok {
		return Collapsed, &UnknownFlagError{Name: name}
	}
	return st, nil
}

// Has reports whether name is a registered flag.
func (s SessionState) Has(name string) bool {
	_, ok := s.flags[name]
	return ok
}

// Names returns the registered flag names in sorted order.
func (s SessionState) Names() []string {
	return slices.Sorted(maps.Keys(s.flags))
}

// Len returns the number of registered flags.
func (s SessionState) Len() int {
	return len(s.flags)
}

// Equal reports whether both snapshots hold the same flags in the same states.
// The session ID is not compared.
func (s SessionState) Equal(other SessionState) bool {
	return maps.Equal(s.flags, other.flags)
}
