package user

import "shared-ledger/internal/apperr"

var (
	ErrUserNotFound       = apperr.New(apperr.ErrNotFound, "user not found")
	ErrUsernameTaken      = apperr.New(apperr.ErrConflict, "username already exists")
	ErrInvalidCredentials = apperr.New(apperr.ErrUnauthorized, "invalid username or password")
	ErrUsernameRequired   = apperr.New(apperr.ErrInvalid, "username is required")
)
