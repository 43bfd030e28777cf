package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/domain/types"
	"github.com/pacforge/pacforge/pkg/utils/logging"
	"github.com/pacforge/pacforge/pkg/utils/safe"
)

// ProvisionRepo runs the repository workflow: replace any prior repository
// at (owner, name), then wire up the webhook, the cluster registration and a
// local clone. There is no rollback; a failed run is healed by the
// delete-then-create of the next one.
func (x *UseCase) ProvisionRepo(ctx context.Context, input *model.ProvisionRepoInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	cfg := input.Config
	owner := cfg.Owner()
	logger := logging.From(ctx)

	secret, err := x.EnsureToken(ctx, cfg, input.Name)
	if err != nil {
		return err
	}
	forge := x.clients.Forge().WithToken(secret)

	deleted, err := forge.DeleteRepo(ctx, owner, input.Name)
	if err != nil {
		logger.Warn("failed to delete existing repository, continuing", "owner", owner, "repo", input.Name, "error", err)
	} else if deleted {
		logger.Info("deleted existing repository", "owner", owner, "repo", input.Name)
	}

	repo, err := forge.CreateRepo(ctx, owner, input.Name, input.OnOrg)
	if errors.Is(err, types.ErrRepoAlreadyExists) {
		// Another run recreated it between our delete and create.
		repo, err = forge.GetRepo(ctx, owner, input.Name)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to create repository", goerr.V("owner", owner), goerr.V("repo", input.Name))
	}
	logger.Info("repository created", "url", repo.HTMLURL)

	if input.WebhookURL != "" {
		if hook, err := forge.CreateWebhook(ctx, owner, input.Name, input.WebhookURL); err != nil {
			logger.Warn("could not create webhook", "url", input.WebhookURL, "error", err)
		} else {
			logger.Info("webhook created", "url", hook.URL)
		}
	}

	if input.CreatePAC {
		namespace := input.Namespace
		if namespace == "" {
			namespace = input.Name
		}
		reg := &model.ClusterRegistration{
			Namespace:   namespace,
			RepoName:    input.Name,
			RepoURL:     repo.HTMLURL,
			InternalURL: input.InternalURL,
			Secret:      secret,
		}
		if err := x.RegisterCluster(ctx, reg); err != nil {
			if errors.Is(err, types.ErrCommandNotFound) {
				return goerr.Wrap(err, "kubectl not found, install kubectl or pass --create-pac-cr=false")
			}
			logger.Warn("cluster registration incomplete", "namespace", namespace, "error", err)
		}
	}

	dest := input.LocalDir
	if dest == "" {
		dest = filepath.Join(os.TempDir(), input.Name)
	}

	if _, err := os.Stat(dest); err == nil {
		logger.Info("destination already exists, skipping clone", "dest", dest)
		logger.Info("repository ready", "checkout", dest, "url", repo.HTMLURL)
		return nil
	}

	authURL, err := model.AuthCloneURL(repo.CloneURL, "git", string(cfg.Password))
	if err != nil {
		return err
	}

	if _, stderr, err := x.clients.Git().Run(ctx, "clone", authURL, dest); err != nil {
		// dest did not exist before the clone, drop whatever git left behind.
		safe.RemoveAll(dest)
		return goerr.Wrap(err, "failed to clone repository", goerr.V("dest", dest), goerr.V("stderr", stderr))
	}
	logger.Info("repository cloned", "dest", dest)

	if err := x.clients.WorkBranch(dest, string(types.WorkBranchName)); err != nil {
		return err
	}
	logger.Info("created working branch", "branch", types.WorkBranchName)

	logger.Info("repository ready", "checkout", dest, "url", repo.HTMLURL)
	return nil
}
