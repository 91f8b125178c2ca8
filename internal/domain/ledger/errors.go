package ledger

import "shared-ledger/internal/apperr"

var ErrNoAccess = apperr.New(apperr.ErrForbidden, "no access to group")
