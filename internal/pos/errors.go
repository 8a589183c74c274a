package pos

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrBadTransition   = errors.New("status transition not allowed")
	ErrOrderLocked     = errors.New("order no longer accepts new dishes")
	ErrTotalMismatch   = errors.New("payment total does not match order total")
	ErrOrderNotPayable = errors.New("order is not served or already paid")
	ErrBadCredentials  = errors.New("invalid email or password")
)
