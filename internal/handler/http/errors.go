package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when a protected route is hit
	// without an Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the Authorization header
	// cannot be split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptyToken is returned when the bearer token part is an empty string.
	ErrEmptyToken = errors.New("empty token")
)
