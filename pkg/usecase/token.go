package usecase

import (
	"context"
	"errors"

	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/domain/types"
	"github.com/pacforge/pacforge/pkg/utils/logging"
)

// EnsureToken makes sure a single access token named name exists and returns
// its secret. The forge forbids duplicate token names, so any existing token
// of the same name is deleted first; listing and deletion are best-effort.
// When creation is rejected, the password itself is returned so downstream
// calls can still proceed with full-credential auth. That downgrade is
// reported as a warning, never as a failure.
func (x *UseCase) EnsureToken(ctx context.Context, cfg *model.Config, name string) (types.TokenSecret, error) {
	forge := x.clients.Forge()
	logger := logging.From(ctx)

	tokens, err := forge.ListTokens(ctx)
	if err != nil {
		logger.Debug("failed to list tokens, skipping stale token cleanup", "error", err)
	} else {
		for _, token := range tokens {
			if token.Name != name {
				continue
			}
			if err := forge.DeleteToken(ctx, token.ID); err != nil {
				logger.Debug("failed to delete stale token", "name", name, "error", err)
			} else {
				logger.Info("deleted existing token", "name", name)
			}
			break
		}
	}

	token, err := forge.CreateToken(ctx, name)
	if err != nil {
		if errors.Is(err, types.ErrUnexpectedResponse) {
			logger.Warn("could not create token, falling back to password auth", "name", name, "error", err)
			return types.TokenSecret(cfg.Password), nil
		}
		return "", err
	}

	return token.Secret, nil
}
