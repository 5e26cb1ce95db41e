package resumes

import "fmt"

// SessionState tracks where a jobseeker's resume sits in the edit/save
// lifecycle. It is persisted with the record and gates saving and download.
type SessionState string

const (
	StateEmpty   SessionState = "empty"
	StateEditing SessionState = "editing"
	StateDirty   SessionState = "dirty"
	StateSaving  SessionState = "saving"
	StateSaved   SessionState = "saved"
	StateError   SessionState = "error"
)

var sessionTransitions = map[SessionState][]SessionState{
	StateEmpty:   {StateEditing},
	StateEditing: {StateDirty, StateSaving},
	StateDirty:   {StateSaving},
	StateSaving:  {StateSaved, StateError},
	StateSaved:   {StateDirty},
	StateError:   {StateDirty, StateSaving},
}

// CanTransition reports whether moving from one state to another is legal.
func CanTransition(from, to SessionState) bool {
	for _, next := range sessionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition returns the target state or an error naming the illegal move.
func Transition(from, to SessionState) (SessionState, error) {
	if !CanTransition(from, to) {
		return from, fmt.Errorf("illegal session transition %s -> %s", from, to)
	}
	return to, nil
}

// ValidState reports whether a persisted value names a known state.
func ValidState(s SessionState) bool {
	_, ok := sessionTransitions[s]
	return ok
}
