package todoist

// Todoist Sync API endpoints and limits.
const (
	DefaultBaseURL = "https://api.todoist.com"

	syncPath      = "/sync/v9/sync"
	completedPath = "/sync/v9/completed/get_all"

	// CompletedPageSize is the fixed page size for completed-task pagination.
	CompletedPageSize = 200
)
