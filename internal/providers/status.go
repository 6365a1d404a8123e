package providers

import "fmt"

// Status is a provider's lifecycle state.
type Status string

// Provider lifecycle states. Every provider is created in StatusDraft;
// StatusRemoved is terminal.
const (
	StatusDraft         Status = "draft"
	StatusSubmitted     Status = "submitted"
	StatusReady         Status = "ready"
	StatusEvaluation    Status = "evaluation"
	StatusPreProduction Status = "pre_production"
	StatusActive        Status = "active"
	StatusDeprecated    Status = "deprecated"
	StatusRemoved       Status = "removed"
	StatusDegraded      Status = "degraded"
	StatusMaintenance   Status = "maintenance"
	StatusReEvaluation  Status = "re_evaluation"
)

// Statuses lists every lifecycle state.
func Statuses() []Status {
	return []Status{
		StatusDraft, StatusSubmitted, StatusReady, StatusEvaluation,
		StatusPreProduction, StatusActive, StatusDeprecated, StatusRemoved,
		StatusDegraded, StatusMaintenance, StatusReEvaluation,
	}
}

// ParseStatus validates a raw status value.
func ParseStatus(raw string) (Status, error) {
	for _, s := range Statuses() {
		if Status(raw) == s {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid provider status: %q", raw)
}

// successor holds the single allowed forward edge out of each state.
// StatusRemoved has no entry: it is terminal.
var successor = map[Status]Status{
	StatusDraft:         StatusSubmitted,
	StatusSubmitted:     StatusReady,
	StatusReady:         StatusEvaluation,
	StatusEvaluation:    StatusPreProduction,
	StatusPreProduction: StatusActive,
	StatusActive:        StatusDeprecated,
	StatusDeprecated:    StatusRemoved,
	StatusDegraded:      StatusMaintenance,
	StatusMaintenance:   StatusReEvaluation,
	StatusReEvaluation:  StatusActive,
}

// CanTransition reports whether the transition from s to next is allowed.
// Same-state transitions are always legal; they refresh audit fields
// without changing status, making transition requests retry-safe.
func (s Status) CanTransition(next Status) bool {
	if s == next {
		return true
	}
	return successor[s] == next
}

// RequiresTester reports whether s is a state in which the provider must
// retain at least one site tester.
func (s Status) RequiresTester() bool {
	switch s {
	case StatusEvaluation, StatusActive, StatusDegraded, StatusMaintenance, StatusReEvaluation:
		return true
	default:
		return false
	}
}

// DeleteAction is the effect a delete request has on a provider, determined
// by its current status.
type DeleteAction int

// Delete effects. Only providers that never left draft or ready are hard
// deleted; everything else is retired through a forced status transition so
// the audit trail survives.
const (
	DeleteHard DeleteAction = iota
	DeleteDeprecate
	DeleteRemove
)

// DeleteAction maps the status to its delete effect. The mapping is total:
// every state resolves to exactly one action.
func (s Status) DeleteAction() DeleteAction {
	switch s {
	case StatusDraft, StatusReady:
		return DeleteHard
	case StatusActive, StatusDegraded, StatusMaintenance, StatusReEvaluation:
		return DeleteDeprecate
	default:
		return DeleteRemove
	}
}
