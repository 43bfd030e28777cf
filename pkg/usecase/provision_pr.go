package usecase

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pacforge/pacforge/pkg/domain/interfaces"
	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/utils/logging"
	"gopkg.in/yaml.v3"
)

// PipelineFilePath is where the committed pipeline document lands in the
// repository. Pipelines-as-Code only picks up files under .tekton/.
const PipelineFilePath = ".tekton/pr-noop.yaml"

// ProvisionPR creates a pull request carrying a pipeline definition: a fresh
// branch is forked from the target branch by committing the document to it,
// then the pull request is opened from that branch.
func (x *UseCase) ProvisionPR(ctx context.Context, input *model.ProvisionPRInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	cfg := input.Config
	owner := cfg.Owner()
	logger := logging.From(ctx)

	secret, err := x.EnsureToken(ctx, cfg, input.Name+"-pr")
	if err != nil {
		return err
	}
	forge := x.clients.Forge().WithToken(secret)

	branch := model.NewBranchName(x.clients.Now())

	content, err := os.ReadFile(input.PipelineFile)
	if err != nil {
		return goerr.Wrap(err, "failed to read pipeline file", goerr.V("path", input.PipelineFile))
	}
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return goerr.Wrap(err, "pipeline file is not valid YAML", goerr.V("path", input.PipelineFile))
	}

	logger.Info("creating branch with pipeline file", "branch", branch, "base", input.TargetBranch)
	if err := forge.CreateFileOnBranch(ctx, &interfaces.CreateFileInput{
		Owner:      owner,
		Repo:       input.Name,
		Path:       PipelineFilePath,
		Content:    content,
		Message:    "Add Tekton PipelineRun",
		BaseBranch: input.TargetBranch,
		NewBranch:  branch,
	}); err != nil {
		return goerr.Wrap(err, "failed to create file on branch", goerr.V("branch", branch))
	}

	title := input.Title
	if title == "" {
		title = "Test PR - " + string(branch)
	}

	pr, err := forge.CreatePullRequest(ctx, &interfaces.CreatePullRequestInput{
		Owner: owner,
		Repo:  input.Name,
		Title: title,
		Head:  string(branch),
		Base:  input.TargetBranch,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to create pull request", goerr.V("head", branch), goerr.V("base", input.TargetBranch))
	}

	if input.OpenBrowser {
		if err := x.clients.OpenBrowser(pr.HTMLURL); err != nil {
			logger.Debug("could not open browser", "url", pr.HTMLURL, "error", err)
		}
	}

	logger.Info("pull request created",
		"number", pr.Number,
		"url", pr.HTMLURL,
		"branch", branch,
		"target", input.TargetBranch,
	)
	return nil
}
