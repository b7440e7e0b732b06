package usecase

import (
	"gym-booking/internal/domain/user"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token to the caller that booking
// handlers fall back to when a request omits user_id.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Wrap(err, "bearer token rejected")
	}

	callerID, err := claims.UserID()
	if err != nil || callerID == uuid.Nil {
		return uuid.Nil, "", errs.Newf("bearer token has no usable subject")
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Wrapf(err, "bearer token for %s", callerID)
	}
	return callerID, role, nil
}
