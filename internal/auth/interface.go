package auth

import "context"

// UseCase defines the business logic interface for the auth domain.
type UseCase interface {
	// LoginURL issues a fresh anti-CSRF state bound to the export
	// preferences and returns the authorization redirect URL.
	LoginURL(ctx context.Context, input LoginInput) (string, error)

	// HandleCallback validates the state, exchanges the authorization
	// code for a bearer token, and returns the stashed preferences.
	HandleCallback(ctx context.Context, input CallbackInput) (CallbackOutput, error)
}
