package category

import "shared-ledger/internal/apperr"

var (
	ErrInvalidType   = apperr.New(apperr.ErrInvalid, "type must be income or expense")
	ErrNameRequired  = apperr.New(apperr.ErrInvalid, "category name is required")
	ErrGroupRequired = apperr.New(apperr.ErrInvalid, "group id is required")
)
