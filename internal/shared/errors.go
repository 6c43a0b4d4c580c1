package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates malformed or out-of-bounds client input.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicateEmail indicates a registration attempt with an email that
	// is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrPayloadTooLarge indicates a request body larger than the server's
	// configured cap.
	ErrPayloadTooLarge = errors.New("request body too large")
	// ErrInvalidCredentials indicates login failure. The same error covers
	// unknown email and wrong password so callers cannot probe which emails
	// are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated indicates a missing, malformed, or expired bearer
	// token. All token failure modes collapse into this one error.
	ErrUnauthenticated = errors.New("authentication invalid")
)
