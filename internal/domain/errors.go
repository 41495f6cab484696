package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderExists      = errors.New("order already exists")
	ErrUnauthorized     = errors.New("actor is not allowed to act on this order")
	ErrOrderUnavailable = errors.New("order is no longer available")

	ErrVerificationMismatch    = errors.New("scanned code does not match this order")
	ErrDisputeAlreadyRequested = errors.New("cancellation was already requested for this order")
	ErrDisputeAlreadyResolved  = errors.New("dispute was already resolved")
	ErrNoDispute               = errors.New("order has no open dispute")

	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCoordinates = errors.New("coordinates out of range")

	ErrTxAlreadyKnown = errors.New("transaction already known")
	ErrSequenceTooLow = errors.New("sequence number too low")
)

// TransitionError is returned when a requested operation does not match the
// order's current status. It carries both sides so the caller can render
// which precondition failed.
type TransitionError struct {
	OrderID  string
	Action   string
	Current  OrderStatus
	Required []OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s rejected: order %s status is %s, required %v", e.Action, e.OrderID, e.Current, e.Required)
}

func NewTransitionError(orderID, action string, current OrderStatus, required ...OrderStatus) *TransitionError {
	return &TransitionError{OrderID: orderID, Action: action, Current: current, Required: required}
}

// UpstreamError wraps a failed call to the ledger or the reasoning service.
// When the local transition already succeeded it is surfaced as a warning,
// never as a rollback.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
