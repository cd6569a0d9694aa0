// Package errors defines the closed error set shared between the services
// and the HTTP boundary. Handlers match these with errors.Is and translate
// them to status codes; anything outside the set is treated as an
// unexpected server fault.
package errors

import (
	"errors"
)

var (
	// Credential lifecycle.
	ErrLoginTaken          = errors.New("login already in use")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// Token verification.
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	// Request guard.
	ErrUnauthenticated = errors.New("access token required")

	// Catalog mutations.
	ErrBookNotFound  = errors.New("book not found")
	ErrInvalidRating = errors.New("rating out of range")
	ErrInvalidID     = errors.New("invalid id")
)

// IsAuthError reports whether err is one of the credential-shaped
// failures the boundary maps to a client rejection rather than a 500.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrLoginTaken) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidRefreshToken)
}

// IsTokenError reports whether err came out of token verification.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrTokenExpired) || errors.Is(err, ErrTokenInvalid)
}

// IsValidationError reports whether err is a bad-input failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRating) || errors.Is(err, ErrInvalidID)
}

// IsNotFound reports whether err means a referenced entity is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrBookNotFound)
}
