package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a non-2xx response. Code is the server's machine-readable
// error code when the body was the usual {error, code} JSON; for anything
// else Message carries the raw body text.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var parsed struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Error != "" {
		return &APIError{Status: resp.StatusCode, Code: parsed.Code, Message: parsed.Error}
	}
	return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
}

func codeOf(err error) string {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// IsTotalMismatch reports a stale-total rejection: the order changed since
// the cashier screen last fetched it. Recoverable: refresh and retry.
func IsTotalMismatch(err error) bool { return codeOf(err) == "total_mismatch" }

// IsEmailTaken reports a duplicate-email registration, which the screens
// show with a friendlier message than the generic server error.
func IsEmailTaken(err error) bool { return codeOf(err) == "email_taken" }

func IsBadTransition(err error) bool { return codeOf(err) == "bad_transition" }
