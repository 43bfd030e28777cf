package usecase

import (
	"bytes"
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/utils/logging"
)

// RegisterCluster creates the namespace, the token secret and the Repository
// custom resource that point a Pipelines-as-Code installation at the
// provisioned repository. Secret and custom resource are upserted with
// delete-ignore-not-found-then-create so that a stale registration of the
// same name never survives a run.
func (x *UseCase) RegisterCluster(ctx context.Context, reg *model.ClusterRegistration) error {
	if err := reg.Validate(); err != nil {
		return err
	}

	kubectl := x.clients.Kubectl()
	if err := kubectl.LookPath(); err != nil {
		return err
	}

	logger := logging.From(ctx)

	if _, stderr, err := kubectl.Run(ctx, "create", "namespace", reg.Namespace); err != nil {
		if strings.Contains(stderr, "AlreadyExists") {
			logger.Info("namespace already exists", "namespace", reg.Namespace)
		} else {
			logger.Warn("could not create namespace", "namespace", reg.Namespace, "stderr", stderr)
		}
	} else {
		logger.Info("namespace created", "namespace", reg.Namespace)
	}

	if _, _, err := kubectl.Run(ctx, "delete", "secret", reg.RepoName, "-n", reg.Namespace, "--ignore-not-found=true"); err != nil {
		logger.Debug("failed to delete stale secret", "name", reg.RepoName, "error", err)
	}
	if _, stderr, err := kubectl.Run(ctx, "create", "secret", "generic", reg.RepoName,
		"--from-literal=token="+string(reg.Secret), "-n", reg.Namespace); err != nil {
		return goerr.Wrap(err, "failed to create token secret",
			goerr.V("name", reg.RepoName), goerr.V("namespace", reg.Namespace), goerr.V("stderr", stderr))
	}
	logger.Info("token secret created", "name", reg.RepoName, "namespace", reg.Namespace)

	if _, _, err := kubectl.Run(ctx, "delete", "repository", reg.RepoName, "-n", reg.Namespace, "--ignore-not-found=true"); err != nil {
		logger.Debug("failed to delete stale Repository resource", "name", reg.RepoName, "error", err)
	}

	manifest, err := reg.Manifest()
	if err != nil {
		return err
	}
	if _, stderr, err := kubectl.RunStdin(ctx, bytes.NewReader(manifest), "apply", "-f", "-"); err != nil {
		return goerr.Wrap(err, "failed to apply Repository resource",
			goerr.V("name", reg.RepoName), goerr.V("namespace", reg.Namespace), goerr.V("stderr", stderr))
	}
	logger.Info("Repository resource created", "name", reg.RepoName, "namespace", reg.Namespace)

	return nil
}
