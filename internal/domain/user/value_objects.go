package user

import (
	"gym-booking/internal/pkg/errs"
)

var (
	ErrInvalidRole  = errs.NewValidation("invalid role")
	ErrUserNotFound = errs.NewNotFound("user not found")
)
