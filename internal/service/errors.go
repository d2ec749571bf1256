package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields before any storage call is made.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the supplied password does not match
	// the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure so
	// callers need not inspect low-level token errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
