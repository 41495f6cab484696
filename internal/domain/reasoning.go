package domain

import "context"

// ReasoningClient delegates dispute adjudication to an external
// text-reasoning service. Analyze returns the raw decision literal and a
// human-readable explanation; callers must validate the literal and fall
// back to the deterministic rules on any error.
type ReasoningClient interface {
	Analyze(ctx context.Context, agreement, reason string) (decision, explanation string, err error)
}
