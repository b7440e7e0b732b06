package booking

import (
	"fmt"

	"gym-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingFields        = errs.NewValidation("missing fields")
	ErrInvalidDate          = errs.NewValidation("invalid or past date")
	ErrBadTimeFormat        = errs.NewValidation("bad time format")
	ErrEndBeforeStart       = errs.NewValidation("end before start")
	ErrOutsideBusinessHours = errs.NewValidation("outside business hours")
	ErrDurationOutOfRange   = errs.NewValidation("duration out of range")
	ErrNonPositiveDuration  = errs.NewValidation("duration must be positive")
	ErrAlreadyTerminal      = errs.NewValidation("already terminal")
	ErrInvalidStatus        = errs.NewValidation("invalid status")
	ErrNegativePrice        = errs.NewValidation("price cannot be negative")
	ErrNotesTooLong         = errs.NewValidation("notes are too long (max 1000 characters)")

	ErrBookingNotFound = errs.NewNotFound("booking not found")
)

// Conflict describes an existing active booking that overlaps a requested slot.
type Conflict struct {
	ID        uuid.UUID
	StartTime TimeOfDay
	EndTime   TimeOfDay
	Status    Status
}

type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time slot conflicts with %d existing booking(s)", len(e.Conflicts))
}

func NewConflictError(conflicts []Conflict) error {
	return errs.Mark(&ConflictError{Conflicts: conflicts}, errs.ErrConflict)
}

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("booking in status %s cannot be modified", e.From)
	}
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func NewInvalidTransitionError(from, to Status) error {
	return errs.Mark(&InvalidTransitionError{From: from, To: to}, errs.ErrInvalidTransition)
}
