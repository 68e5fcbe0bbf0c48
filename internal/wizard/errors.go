// Package wizard orchestrates the candidate virtual-application flow: a
// linear questionnaire → slot → confirmation state machine that accumulates
// an application draft and submits it as a two-call saga.
package wizard

import "fmt"

// ErrClosed indicates an action on a wizard with no open session
type ErrClosed struct{}

func (e *ErrClosed) Error() string {
	return "wizard is not open"
}

// ErrInvalidStep indicates an action invoked from the wrong step
type ErrInvalidStep struct {
	Current Step
	Action  string
}

func (e *ErrInvalidStep) Error() string {
	return fmt.Sprintf("cannot %s from step %s", e.Action, e.Current)
}

// ErrInvalidSlot indicates a slot id outside the selectable set
type ErrInvalidSlot struct {
	SlotID int
}

func (e *ErrInvalidSlot) Error() string {
	return fmt.Sprintf("slot %d is not available for selection", e.SlotID)
}

// BookingError indicates the application was created but the slot booking
// call failed, leaving the submission in the booking_failed state. The
// application record exists server-side; RetryBooking re-attempts only the
// booking call.
type BookingError struct {
	ApplicationID int
	SlotID        int
	Cause         error
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("application %d created but booking slot %d failed: %v", e.ApplicationID, e.SlotID, e.Cause)
}

func (e *BookingError) Unwrap() error {
	return e.Cause
}
