package core

import (
	"errors"
	"fmt"
)

// Authentication errors
var (
	// ErrEmptyCredentials is returned when username or password is blank after trimming.
	ErrEmptyCredentials = errors.New("please enter both username and password") // 400 Bad Request

	// ErrInvalidCredentials covers both unknown-username and wrong-password
	// failures. The two causes share one kind and one message so callers
	// cannot enumerate which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password, please check your credentials and try again") // 401 Unauthorized
)

// Session errors
var (
	ErrNoSession = errors.New("no active session for this context") // 401
)

// Directory errors
var (
	ErrAccountNotFound = errors.New("account not found") // internal, mapped to ErrInvalidCredentials
)

// Config errors (server-side configuration)
var (
	ErrNoSeedAccounts       = errors.New("at least one seed account is required") // 500
	ErrDuplicateSeedAccount = errors.New("duplicate seed account username")       // 500
)

// AccessDenied is returned by the guard when a protected resource is reached
// without an active session. Location is where the caller must redirect;
// protected content must never be rendered alongside it.
type AccessDenied struct {
	Location string
}

func (e *AccessDenied) Error() string {
	return "access denied: please login to continue"
}

// ValidationError carries every contact-form violation at once, in field
// order, so the caller can re-render the form with all problems visible.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contact form rejected with %d violation(s)", len(e.Violations))
}
