package auth

import "gymhub/internal/pkg/apperr"

var (
	ErrEmailTaken         = apperr.Conflict("EMAIL_TAKEN", "email is already registered")
	ErrInvalidCredentials = apperr.Unauthorized("invalid email or password")
	ErrUserNotFound       = apperr.NotFound("USER_NOT_FOUND", "user not found")
	ErrInvalidRole        = apperr.Validation("INVALID_ROLE", "invalid role")
)
