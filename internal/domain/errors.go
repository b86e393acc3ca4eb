package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRejected matches every RejectionError via errors.Is
	ErrRejected = errors.New("investment rejected")

	// ErrSessionNotFound is returned when a session ID is unknown to the repository
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionLimit is returned when no more sessions can be started
	ErrSessionLimit = errors.New("session limit reached")
)

// RejectionReason names why an investment submission was refused
type RejectionReason string

const (
	ReasonEmptyName            RejectionReason = "empty-name"
	ReasonUnparseableRate      RejectionReason = "unparseable-rate"
	ReasonUnparseableAmount    RejectionReason = "unparseable-amount"
	ReasonNegativeAmount       RejectionReason = "negative-amount"
	ReasonUnknownMode          RejectionReason = "unknown-mode"
	ReasonDegenerateDerivation RejectionReason = "degenerate-derivation"
)

// RejectionError is returned for invalid input. The ledger is never mutated when it occurs.
type RejectionError struct {
	Reason RejectionReason
}

// Reject builds a RejectionError for the given reason
func Reject(reason RejectionReason) error {
	return &RejectionError{Reason: reason}
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("invalid investment: %s", e.Reason)
}

// Is reports ErrRejected as a match so callers don't need errors.As for the common check
func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}

// IsRejection extracts the rejection reason from err, if any
func IsRejection(err error) (RejectionReason, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Reason, true
	}
	return "", false
}
