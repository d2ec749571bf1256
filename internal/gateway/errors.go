package gateway

import "errors"

var (
	// ErrUnauthorized reports an HTTP 401 — the session token is missing,
	// expired, or wrong credentials were sent to /login.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound reports an HTTP 404 on a collection or item endpoint.
	ErrNotFound = errors.New("resource not found")

	// ErrServerError reports an HTTP 5xx.
	ErrServerError = errors.New("server error")
)
