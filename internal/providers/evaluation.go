package providers

import (
	"context"

	"github.com/google/uuid"
)

// EvaluationRequest carries what a downstream evaluation process needs to
// start assessing a newly registered provider.
type EvaluationRequest struct {
	ProviderID   uuid.UUID `json:"provider_id"`
	AuthEndpoint string    `json:"auth_endpoint"`
}

// EvaluationDispatcher hands a freshly created provider off for evaluation.
// The registry only supplies the provider's identity and auth endpoint; the
// transport carrying the request is outside this service.
type EvaluationDispatcher interface {
	Dispatch(ctx context.Context, req EvaluationRequest) error
}

// NopDispatcher discards evaluation requests. It is the default when no
// messaging layer is wired in.
type NopDispatcher struct{}

// Dispatch implements EvaluationDispatcher.
func (NopDispatcher) Dispatch(context.Context, EvaluationRequest) error { return nil }
