package domain

import "errors"

// Error taxonomy shared by every layer. Repositories and usecases wrap these
// with fmt.Errorf("%w: ...") and controllers map them to HTTP statuses with
// errors.Is, so raw driver errors never reach a response body.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrConflict   = errors.New("resource already exists")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
	ErrUpstream   = errors.New("upstream service failure")

	// ErrInvalidCredentials indicates a login failure without revealing
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
