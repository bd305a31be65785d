package booking

import (
	"errors"
	"fmt"

	"courtbook/internal/domain"
)

var (
	ErrNotFound          = errors.New("booking not found")
	ErrCourtNotFound     = errors.New("court not found or inactive")
	ErrConflict          = errors.New("time slot is already booked")
	ErrBlocked           = errors.New("court is not available during this time")
	ErrNoPricing         = errors.New("no pricing available for this time slot")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidation        = errors.New("validation error")
	ErrForbidden         = errors.New("forbidden")
)

// BlockedError carries the owner's stated reason so callers can surface
// which block rejected the request. errors.Is(err, ErrBlocked) matches.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "Blocked"
	}
	return fmt.Sprintf("court is not available during this time. Reason: %s", reason)
}

func (e *BlockedError) Is(target error) bool { return target == ErrBlocked }

// TransitionError names the status that forbade a lifecycle transition.
// errors.Is(err, ErrInvalidTransition) matches.
type TransitionError struct {
	Action string
	From   domain.BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s booking with status: %s", e.Action, e.From)
}

func (e *TransitionError) Is(target error) bool { return target == ErrInvalidTransition }
