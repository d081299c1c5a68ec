package export

import "errors"

// Domain-specific errors for the export package. The messages are
// user-facing: the delivery layer renders them verbatim.
var (
	ErrSnapshotFetch     = errors.New("Could not fetch data from Todoist.")
	ErrPremiumRequired   = errors.New("Must be Todoist Premium to export archived items.")
	ErrSerialization     = errors.New("CSV export error.")
	ErrJSONSerialization = errors.New("JSON export error.")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrMissingToken      = errors.New("token is required")
)
