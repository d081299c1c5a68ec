package export

import (
	"context"

	"todoist-export/pkg/todoist"
)

// UseCase defines the business logic interface for the export domain.
type UseCase interface {
	// Export fetches the account snapshot, optionally merges the full
	// completed-task history, and serializes it in the requested format.
	Export(ctx context.Context, input Input) (Output, error)
}

// SyncClient is the upstream surface the export pipeline needs. The
// todoist client satisfies it; tests substitute synthetic sources.
type SyncClient interface {
	FetchSnapshot(ctx context.Context, token string) (*todoist.Snapshot, error)
	FetchAllCompleted(ctx context.Context, token string) []*todoist.Item
}
