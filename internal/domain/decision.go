package domain

import "fmt"

// Decision is the recorded outcome for a (profile, name) pair
type Decision string

const (
	DecisionLike      Decision = "like"
	DecisionDislike   Decision = "dislike"
	DecisionMaybe     Decision = "maybe"
	DecisionSuperlike Decision = "superlike"
)

// Valid reports whether d is one of the decisions the backend accepts
func (d Decision) Valid() bool {
	switch d {
	case DecisionLike, DecisionDislike, DecisionMaybe, DecisionSuperlike:
		return true
	}
	return false
}

// ParseDecision converts a wire literal into a Decision
func ParseDecision(s string) (Decision, error) {
	d := Decision(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown decision %q", s)
	}
	return d, nil
}

// Swipe is one decision submission for a (profile, name) pair
type Swipe struct {
	UserID   int      `json:"user_id"`
	NameID   int      `json:"name_id"`
	Decision Decision `json:"decision"`
}
