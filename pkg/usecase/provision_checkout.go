package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/domain/types"
	"github.com/pacforge/pacforge/pkg/utils/logging"
	"github.com/pacforge/pacforge/pkg/utils/safe"
)

// ProvisionCheckout clones an existing repository with a fresh token. The
// destination is validated before any network traffic happens.
func (x *UseCase) ProvisionCheckout(ctx context.Context, input *model.ProvisionCheckoutInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	cfg := input.Config
	owner, name := model.SplitRepoArg(input.Repo, cfg)
	logger := logging.From(ctx)

	dest, err := validateDestination(input.Destination)
	if err != nil {
		return err
	}

	secret, err := x.EnsureToken(ctx, cfg, "checkout-"+name)
	if err != nil {
		return err
	}

	cloneURL, err := model.RepoCloneURL(cfg.BaseURL, owner, name)
	if err != nil {
		return err
	}
	authURL, err := model.AuthCloneURL(cloneURL, "git", string(secret))
	if err != nil {
		return err
	}

	logger.Info("cloning repository", "owner", owner, "repo", name, "dest", dest)
	if _, stderr, err := x.clients.Git().Run(ctx, "clone", authURL, dest); err != nil {
		// dest was empty or absent before the clone, so a partial
		// checkout is the only thing removed here.
		safe.RemoveAll(dest)
		if strings.Contains(strings.ToLower(stderr), "not found") {
			return goerr.Wrap(err, "repository may not exist on the forge",
				goerr.V("repo", owner+"/"+name), goerr.V("stderr", stderr))
		}
		return goerr.Wrap(err, "failed to clone repository",
			goerr.V("repo", owner+"/"+name), goerr.V("stderr", stderr))
	}

	logger.Info("repository cloned", "dest", dest, "url", cloneURL)
	return nil
}

func validateDestination(destination string) (string, error) {
	dest, err := filepath.Abs(destination)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve destination", goerr.V("destination", destination))
	}

	st, err := os.Stat(dest)
	switch {
	case err == nil && !st.IsDir():
		return "", goerr.Wrap(types.ErrInvalidDestination, "destination is a file", goerr.V("destination", dest))

	case err == nil:
		entries, err := os.ReadDir(dest)
		if err != nil {
			return "", goerr.Wrap(err, "failed to read destination", goerr.V("destination", dest))
		}
		if len(entries) > 0 {
			return "", goerr.Wrap(types.ErrInvalidDestination, "destination already exists and is not empty", goerr.V("destination", dest))
		}

	default:
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return "", goerr.Wrap(err, "failed to create parent directories", goerr.V("destination", dest))
		}
	}

	return dest, nil
}
