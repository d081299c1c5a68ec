package usecase

import (
	"context"
	"encoding/json"

	"todoist-export/internal/export"
	"todoist-export/pkg/todoist"
)

// Export runs the full pipeline: snapshot fetch, optional completed-task
// merge (premium-gated), format-specific transform, serialization.
func (uc *implUseCase) Export(ctx context.Context, input export.Input) (export.Output, error) {
	if input.Token == "" {
		return export.Output{}, export.ErrMissingToken
	}
	if !input.Format.Valid() {
		return export.Output{}, export.ErrUnsupportedFormat
	}

	snapshot, err := uc.client.FetchSnapshot(ctx, input.Token)
	if err != nil {
		uc.l.Errorf(ctx, "export: snapshot fetch failed: %v", err)
		return export.Output{}, export.ErrSnapshotFetch
	}
	if !snapshot.Usable() {
		uc.l.Errorf(ctx, "export: snapshot payload unusable")
		return export.Output{}, export.ErrSnapshotFetch
	}

	if input.IncludeArchived {
		// Premium gate comes first: a non-premium account must not
		// trigger any completed-task call.
		if !snapshot.User.IsPremium {
			return export.Output{}, export.ErrPremiumRequired
		}
		uc.mergeCompleted(ctx, input.Token, snapshot)
	}

	switch input.Format {
	case export.FormatCSV:
		return uc.emitCSV(ctx, snapshot)
	default:
		return uc.emitJSON(ctx, snapshot)
	}
}

// mergeCompleted fetches the full completed-task history and attaches
// it twice: as a named collection for the JSON output, and appended to
// the flat item list for the CSV output.
func (uc *implUseCase) mergeCompleted(ctx context.Context, token string, snapshot *todoist.Snapshot) {
	completed := uc.client.FetchAllCompleted(ctx, token)
	uc.l.Infof(ctx, "export: merged %d completed tasks", len(completed))

	snapshot.Completed = &todoist.Completed{Results: completed}
	snapshot.Items = append(snapshot.Items, completed...)
}

func (uc *implUseCase) emitJSON(ctx context.Context, snapshot *todoist.Snapshot) (export.Output, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		uc.l.Errorf(ctx, "export: JSON marshal failed: %v", err)
		return export.Output{}, export.ErrJSONSerialization
	}
	return export.Output{
		Filename:    "todoist.json",
		ContentType: "application/json",
		Data:        data,
	}, nil
}

func (uc *implUseCase) emitCSV(ctx context.Context, snapshot *todoist.Snapshot) (export.Output, error) {
	resolveProjectNames(snapshot)
	resolveUserNames(snapshot)
	sanitizeForCSV(snapshot.Items)

	data, err := encodeCSV(snapshot.Items)
	if err != nil {
		uc.l.Errorf(ctx, "export: CSV encode failed: %v", err)
		return export.Output{}, export.ErrSerialization
	}
	return export.Output{
		Filename:    "todoist.csv",
		ContentType: "text/csv",
		Data:        data,
	}, nil
}
