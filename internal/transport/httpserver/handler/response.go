package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"shared-ledger/internal/apperr"
	groupdomain "shared-ledger/internal/domain/group"
	ledgerdomain "shared-ledger/internal/domain/ledger"
	userdomain "shared-ledger/internal/domain/user"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

var errorCodes = []struct {
	err  error
	code string
}{
	{userdomain.ErrUserNotFound, "user_not_found"},
	{userdomain.ErrUsernameTaken, "username_taken"},
	{userdomain.ErrInvalidCredentials, "invalid_credentials"},
	{groupdomain.ErrGroupNotFound, "group_not_found"},
	{groupdomain.ErrCodeGenerationFailed, "invite_code_unavailable"},
	{ledgerdomain.ErrNoAccess, "no_access"},
}

// writeServiceError maps an error returned by a domain service to its HTTP
// status. Expected failures are logged as business errors, the rest as
// internal errors with a generic message.
func (h *Handlers) writeServiceError(w http.ResponseWriter, op string, err error, args ...any) {
	status, code := statusFor(err)
	for _, known := range errorCodes {
		if errors.Is(err, known.err) {
			code = known.code
			break
		}
	}

	if status >= http.StatusInternalServerError {
		h.log.InternalError(op+": failed", err, args...)
		message := "internal error"
		if status == http.StatusServiceUnavailable {
			message = "storage unavailable"
		}
		writeError(w, status, code, message)
		return
	}

	h.log.BusinessError(op+": rejected", err, args...)
	writeError(w, status, code, err.Error())
}

func statusFor(err error) (int, string) {
	switch apperr.Kind(err) {
	case apperr.ErrNotFound:
		return http.StatusNotFound, "not_found"
	case apperr.ErrForbidden:
		return http.StatusForbidden, "forbidden"
	case apperr.ErrConflict:
		return http.StatusConflict, "conflict"
	case apperr.ErrUnauthorized:
		return http.StatusUnauthorized, "unauthorized"
	case apperr.ErrInvalid:
		return http.StatusBadRequest, "invalid_request"
	case apperr.ErrUnavailable:
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
