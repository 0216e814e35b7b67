package models

import "fmt"

// Status represents the lifecycle state of an order. It is a strictly
// forward-moving enumeration:
//
//	Pending ──> Processing ──> Completed
//
// Stored and serialized as its string form, matching the wire contract.
type Status string

const (
	// StatusPending is the initial status assigned at creation.
	StatusPending Status = "Pending"

	// StatusProcessing indicates a worker has claimed the order and is
	// fulfilling it.
	StatusProcessing Status = "Processing"

	// StatusCompleted is the terminal status. No further transitions exist.
	StatusCompleted Status = "Completed"
)

// ParseStatus converts a stored string into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusCompleted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

// CanTransitionTo reports whether moving from s to next is a legal forward
// step. Anything else — including re-entering the current status — is not a
// transition; callers treat it as a no-op, never as a rollback.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing
	case StatusProcessing:
		return next == StatusCompleted
	default:
		return false
	}
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}
