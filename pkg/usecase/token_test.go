package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/domain/types"
	"github.com/pacforge/pacforge/pkg/infra"
	"github.com/pacforge/pacforge/pkg/usecase"
)

func TestEnsureToken(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()

	t.Run("creates a fresh token", func(t *testing.T) {
		forge := newForgeState()
		uc := usecase.New(infra.New(infra.WithForge(forge.Mock)))

		secret := gt.R1(uc.EnsureToken(ctx, cfg, "demo")).NoError(t)
		gt.V(t, secret).NotEqual(types.TokenSecret(""))
		gt.A(t, forge.Mock.CreateTokenCalls()).Length(1)
		gt.V(t, forge.Mock.CreateTokenCalls()[0].Name).Equal("demo")
	})

	t.Run("replaces a stale token of the same name", func(t *testing.T) {
		forge := newForgeState()
		uc := usecase.New(infra.New(infra.WithForge(forge.Mock)))

		first := gt.R1(uc.EnsureToken(ctx, cfg, "demo")).NoError(t)
		second := gt.R1(uc.EnsureToken(ctx, cfg, "demo")).NoError(t)

		gt.V(t, first).NotEqual(second)
		// The stale token was deleted, not duplicated.
		gt.A(t, forge.Mock.DeleteTokenCalls()).Length(1)
		tokens := gt.R1(forge.Mock.ListTokens(ctx)).NoError(t)
		gt.A(t, tokens).Length(1)
	})

	t.Run("unrelated tokens are left alone", func(t *testing.T) {
		forge := newForgeState()
		uc := usecase.New(infra.New(infra.WithForge(forge.Mock)))

		_ = gt.R1(uc.EnsureToken(ctx, cfg, "other")).NoError(t)
		_ = gt.R1(uc.EnsureToken(ctx, cfg, "demo")).NoError(t)

		gt.A(t, forge.Mock.DeleteTokenCalls()).Length(0)
		tokens := gt.R1(forge.Mock.ListTokens(ctx)).NoError(t)
		gt.A(t, tokens).Length(2)
	})

	t.Run("rejected creation falls back to the password", func(t *testing.T) {
		forge := newForgeState()
		forge.Mock.CreateTokenFunc = func(ctx context.Context, name string) (*model.AccessToken, error) {
			return nil, types.ErrUnexpectedResponse
		}
		uc := usecase.New(infra.New(infra.WithForge(forge.Mock)))

		secret := gt.R1(uc.EnsureToken(ctx, cfg, "demo")).NoError(t)
		gt.V(t, secret).Equal(types.TokenSecret(cfg.Password))
	})

	t.Run("transport failure is fatal", func(t *testing.T) {
		forge := newForgeState()
		forge.Mock.CreateTokenFunc = func(ctx context.Context, name string) (*model.AccessToken, error) {
			return nil, errors.New("connection refused")
		}
		uc := usecase.New(infra.New(infra.WithForge(forge.Mock)))

		_, err := uc.EnsureToken(ctx, cfg, "demo")
		gt.Error(t, err)
	})

	t.Run("token listing failure does not block creation", func(t *testing.T) {
		forge := newForgeState()
		forge.Mock.ListTokensFunc = func(ctx context.Context) ([]model.AccessToken, error) {
			return nil, errors.New("connection refused")
		}
		uc := usecase.New(infra.New(infra.WithForge(forge.Mock)))

		secret := gt.R1(uc.EnsureToken(ctx, cfg, "demo")).NoError(t)
		gt.V(t, secret).NotEqual(types.TokenSecret(""))
	})
}
