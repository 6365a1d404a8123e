package providers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fedstack/federation-registry/pkg/handlers"
)

// StateChangeError indicates a requested status transition is not in the
// allowed edge set.
type StateChangeError struct {
	From Status
	To   Status
}

func (e *StateChangeError) Error() string {
	return fmt.Sprintf("provider status transition %s -> %s is not allowed", e.From, e.To)
}

// Membership invariant violations.
var (
	ErrLastSiteAdmin    = errors.New("provider requires at least one site admin")
	ErrLastSiteTester   = errors.New("provider requires at least one site tester while in evaluation, active, degraded, maintenance, or re_evaluation")
	ErrTesterAssignment = errors.New("site testers may only be assigned while the provider is submitted")
	ErrUserNotFound     = errors.New("referenced user does not exist")
	ErrNoSupportEmails  = errors.New("provider requires at least one support email")
)

// MapHTTPStatus maps provider domain errors to HTTP status codes, falling
// back to the shared repository mapping.
func MapHTTPStatus(err error) int {
	var stateChange *StateChangeError

	switch {
	case errors.As(err, &stateChange):
		return http.StatusConflict
	case errors.Is(err, ErrLastSiteAdmin),
		errors.Is(err, ErrLastSiteTester),
		errors.Is(err, ErrTesterAssignment):
		return http.StatusConflict
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoSupportEmails):
		return http.StatusUnprocessableEntity
	default:
		return handlers.StatusFromError(err)
	}
}
