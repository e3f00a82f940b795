package types

import (
	"fmt"
	"sort"
	"strings"
)

// LifecycleState is a Data Safe resource lifecycle state.
type LifecycleState string

const (
	StateCreating       LifecycleState = "CREATING"
	StateUpdating       LifecycleState = "UPDATING"
	StateActive         LifecycleState = "ACTIVE"
	StateInactive       LifecycleState = "INACTIVE"
	StateDeleting       LifecycleState = "DELETING"
	StateDeleted        LifecycleState = "DELETED"
	StateNeedsAttention LifecycleState = "NEEDS_ATTENTION"
	StateFailed         LifecycleState = "FAILED"
)

var validStates = map[LifecycleState]bool{
	StateCreating:       true,
	StateUpdating:       true,
	StateActive:         true,
	StateInactive:       true,
	StateDeleting:       true,
	StateDeleted:        true,
	StateNeedsAttention: true,
	StateFailed:         true,
}

// ParseLifecycleState normalizes a single state token and validates it.
func ParseLifecycleState(token string) (LifecycleState, error) {
	state := LifecycleState(strings.ToUpper(strings.TrimSpace(token)))
	if !validStates[state] {
		return "", fmt.Errorf("unknown lifecycle state %q", token)
	}
	return state, nil
}

// StateSet is a canonical, deduplicated set of lifecycle states.
// The zero value means "all states".
type StateSet struct {
	states []LifecycleState
}

// NewStateSet builds a StateSet from raw tokens. Tokens are trimmed,
// upper-cased, deduplicated and sorted so that equal sets always produce
// the same canonical form. Empty or all-blank input yields the zero set.
func NewStateSet(tokens ...string) (StateSet, error) {
	seen := make(map[LifecycleState]bool)
	var states []LifecycleState
	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			continue
		}
		state, err := ParseLifecycleState(token)
		if err != nil {
			return StateSet{}, err
		}
		if seen[state] {
			continue
		}
		seen[state] = true
		states = append(states, state)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return StateSet{states: states}, nil
}

// IsEmpty reports whether the set matches all states.
func (s StateSet) IsEmpty() bool {
	return len(s.states) == 0
}

// Contains reports whether state is in the set. An empty set contains
// every state.
func (s StateSet) Contains(state LifecycleState) bool {
	if s.IsEmpty() {
		return true
	}
	for _, candidate := range s.states {
		if candidate == state {
			return true
		}
	}
	return false
}

// States returns the canonical ordered states.
func (s StateSet) States() []LifecycleState {
	out := make([]LifecycleState, len(s.states))
	copy(out, s.states)
	return out
}

// CacheKey returns the canonical comma-joined form used as a cache key
// component. The empty set yields "".
func (s StateSet) CacheKey() string {
	parts := make([]string, len(s.states))
	for i, state := range s.states {
		parts[i] = string(state)
	}
	return strings.Join(parts, ",")
}

func (s StateSet) String() string {
	if s.IsEmpty() {
		return "all"
	}
	return s.CacheKey()
}
