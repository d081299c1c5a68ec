package usecase

import (
	"context"

	"github.com/google/uuid"

	"todoist-export/internal/auth"
)

// LoginURL stashes the export preferences under a fresh state token and
// builds the authorization redirect URL.
func (uc *implUseCase) LoginURL(ctx context.Context, input auth.LoginInput) (string, error) {
	state := uuid.NewString()
	uc.states.Add(state, auth.PendingExport{
		Format:   input.Format,
		Archived: input.Archived,
	})

	url := uc.oauth.AuthCodeURL(state)
	uc.l.Debugf(ctx, "auth: issued state %s for format=%s archived=%v", state, input.Format, input.Archived)
	return url, nil
}

// HandleCallback validates the redirect and exchanges the code for a
// bearer token. Each state is single-use.
func (uc *implUseCase) HandleCallback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	if input.ErrParam != "" {
		uc.l.Warnf(ctx, "auth: authorization denied upstream: %s", input.ErrParam)
		return auth.CallbackOutput{}, auth.ErrAuthorization
	}

	pending, ok := uc.states.Get(input.State)
	if !ok {
		return auth.CallbackOutput{}, auth.ErrInvalidState
	}
	uc.states.Remove(input.State)

	if input.Code == "" {
		return auth.CallbackOutput{}, auth.ErrMissingCode
	}

	token, err := uc.oauth.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "auth: code exchange failed: %v", err)
		return auth.CallbackOutput{}, auth.ErrAuthorization
	}

	return auth.CallbackOutput{
		Token:    token.AccessToken,
		Format:   pending.Format,
		Archived: pending.Archived,
	}, nil
}
