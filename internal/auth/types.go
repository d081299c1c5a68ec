package auth

import "todoist-export/internal/export"

// LoginInput carries the export preferences stashed across the OAuth
// redirect round trip.
type LoginInput struct {
	Format   export.Format
	Archived bool
}

// PendingExport is the per-state entry kept while the user is away at
// the authorization server.
type PendingExport struct {
	Format   export.Format
	Archived bool
}

// CallbackInput is the authorization server's redirect payload.
type CallbackInput struct {
	Code     string
	State    string
	ErrParam string // "error" query value, e.g. access_denied
}

// CallbackOutput is the exchanged bearer token plus the original export
// preferences.
type CallbackOutput struct {
	Token    string
	Format   export.Format
	Archived bool
}
