package errs

import cr "github.com/cockroachdb/errors"

// Taxonomy markers shared by the domain, usecase and handler layers.
// Concrete errors are marked with exactly one of them.
var (
	ErrValidation        = cr.New("validation error")
	ErrNotFound          = cr.New("not found")
	ErrConflict          = cr.New("conflict")
	ErrInvalidTransition = cr.New("invalid transition")
)

func NewValidation(msg string) error {
	return cr.Mark(cr.New(msg), ErrValidation)
}

func NewNotFound(msg string) error {
	return cr.Mark(cr.New(msg), ErrNotFound)
}

// Code is the stable machine-readable identifier the HTTP layer exposes.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case cr.Is(err, ErrConflict):
		return "BOOKING_CONFLICT"
	case cr.Is(err, ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case cr.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case cr.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}
