package statemachine

import (
	"errors"
	"fmt"
	"strings"

	"foodshare-api/models"
)

// ErrAlreadyInState is returned when a transition targets the state the donation is already in
var ErrAlreadyInState = errors.New("donation is already in the requested state")

// ErrInvalidTransition is returned for any transition missing from the table
var ErrInvalidTransition = errors.New("invalid donation transition")

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.DonationStatus `json:"from"`
	To    models.DonationStatus `json:"to"`
	Actor string                `json:"actor"`
}

// validTransitions is the authoritative lifecycle definition.
// Collection is one-way: nothing leaves the collected state.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusCollected, Actor: "donor"},
}

type transitionKey struct {
	From models.DonationStatus
	To   models.DonationStatus
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.DonationStatus) []models.DonationStatus {
	var nexts []models.DonationStatus
	seen := map[models.DonationStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves the given state
func IsTerminal(status models.DonationStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// CanTransition checks whether a donation may move from one state to another
func CanTransition(from, to models.DonationStatus) error {
	if from == to {
		return ErrAlreadyInState
	}
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s (valid from %s: %s)",
		ErrInvalidTransition, from, to, from, describeValidFrom(from))
}

func describeValidFrom(status models.DonationStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none, terminal state"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns the full lifecycle for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}

// TerminalStates lists every state with no outgoing transition
func TerminalStates() []models.DonationStatus {
	var terminal []models.DonationStatus
	for _, s := range []models.DonationStatus{models.StatusPending, models.StatusCollected} {
		if IsTerminal(s) {
			terminal = append(terminal, s)
		}
	}
	return terminal
}
