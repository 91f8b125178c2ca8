package group

import "shared-ledger/internal/apperr"

var (
	ErrGroupNotFound        = apperr.New(apperr.ErrNotFound, "group not found")
	ErrCodeRequired         = apperr.New(apperr.ErrInvalid, "invite code is required")
	ErrCodeTaken            = apperr.New(apperr.ErrConflict, "invite code already taken")
	ErrCodeGenerationFailed = apperr.New(apperr.ErrUnavailable, "invite code generation failed")
)
