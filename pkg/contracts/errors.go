package contracts

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnauthorized is returned by every mutating repository operation when
	// the admin authorization flag is not set. The store is never touched.
	ErrUnauthorized = errors.New("unauthorized: admin access required")

	// ErrInvalidCredentials is returned by the password step when the
	// submitted password does not match the stored one.
	ErrInvalidCredentials = errors.New("invalid password")

	// ErrValidation marks malformed login input, e.g. a non-numeric answer to
	// the math challenge.
	ErrValidation = errors.New("invalid input")

	// ErrLockedOut is the sentinel every LockedOutError unwraps to.
	ErrLockedOut = errors.New("account locked")
)

// LockedOutError rejects a password attempt while the lockout guard is
// active. It carries the remaining wait so the caller can render an
// actionable message.
type LockedOutError struct {
	Until     time.Time
	Remaining time.Duration
}

func (e *LockedOutError) Error() string {
	return fmt.Sprintf("account locked: try again in %d minutes", e.RemainingMinutes())
}

func (e *LockedOutError) Unwrap() error { return ErrLockedOut }

// RemainingMinutes rounds the remaining lockout up to whole minutes, never
// reporting zero while the lockout is still active.
func (e *LockedOutError) RemainingMinutes() int {
	mins := int((e.Remaining + time.Minute - 1) / time.Minute)
	if mins < 1 {
		mins = 1
	}
	return mins
}
