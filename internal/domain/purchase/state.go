package purchase

import (
	"ticketqueen/internal/pkg/errs"
)

// State is the lifecycle of one purchase attempt.
type State string

const (
	StateReceived   State = "received"
	StateValidating State = "validating"
	StateCommitting State = "committing"
	StateCommitted  State = "committed"
	StateRolledBack State = "rolled_back"
)

var ErrInvalidTransition = errs.New("invalid purchase state transition")

var transitions = map[State][]State{
	StateReceived:   {StateValidating},
	StateValidating: {StateCommitting, StateRolledBack},
	StateCommitting: {StateCommitted},
}

func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s State) Terminal() bool {
	return s == StateCommitted || s == StateRolledBack
}

func (s State) TransitionTo(next State) (State, error) {
	if !s.CanTransitionTo(next) {
		return s, errs.Wrapf(ErrInvalidTransition, "%s -> %s", s, next)
	}
	return next, nil
}
