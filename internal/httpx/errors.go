package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/laes18/go-restaurant-pos/internal/pos"
)

// Machine-readable error codes. Clients key off the code, never the message
// text, so wording can change without breaking anyone.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidation      = "validation_failed"
	CodeUnauthorized    = "unauthorized"
	CodeNotFound        = "not_found"
	CodeEmailTaken      = "email_taken"
	CodeBadTransition   = "bad_transition"
	CodeOrderLocked     = "order_locked"
	CodeTotalMismatch   = "total_mismatch"
	CodeOrderNotPayable = "order_not_payable"
	CodeInternal        = "internal"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorBody{Error: msg, Code: code})
}

// writeDomainError maps the pos sentinels onto HTTP statuses and codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pos.ErrNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, "not found")
	case errors.Is(err, pos.ErrEmailTaken):
		writeError(w, http.StatusConflict, CodeEmailTaken, "email already registered")
	case errors.Is(err, pos.ErrBadTransition):
		writeError(w, http.StatusConflict, CodeBadTransition, "status transition not allowed")
	case errors.Is(err, pos.ErrOrderLocked):
		writeError(w, http.StatusConflict, CodeOrderLocked, "order no longer accepts new dishes")
	case errors.Is(err, pos.ErrTotalMismatch):
		writeError(w, http.StatusConflict, CodeTotalMismatch, "payment total does not match order total")
	case errors.Is(err, pos.ErrOrderNotPayable):
		writeError(w, http.StatusConflict, CodeOrderNotPayable, "order is not served or already paid")
	default:
		writeError(w, http.StatusInternalServerError, CodeInternal, err.Error())
	}
}
