package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	ErrAuthorization = errors.New("Authorization with Todoist failed.")
	ErrInvalidState  = errors.New("unknown or expired authorization state")
	ErrMissingCode   = errors.New("authorization code is missing")
)
