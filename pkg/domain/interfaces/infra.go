package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . ForgeClient CommandRunner

import (
	"context"
	"io"

	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/domain/types"
)

// ForgeClient is a stateless wrapper around the forge REST API. Token
// endpoints authenticate with the configured username/password; everything
// else uses the token installed by WithToken.
type ForgeClient interface {
	// WithToken returns a client that sends "Authorization: token <secret>"
	// on non-token endpoints. The receiver is not modified.
	WithToken(secret types.TokenSecret) ForgeClient

	ListTokens(ctx context.Context) ([]model.AccessToken, error)
	CreateToken(ctx context.Context, name string) (*model.AccessToken, error)
	DeleteToken(ctx context.Context, id int64) error

	GetRepo(ctx context.Context, owner, name string) (*model.Repository, error)
	// DeleteRepo reports whether the repository was actually deleted.
	// A missing repository is not an error.
	DeleteRepo(ctx context.Context, owner, name string) (bool, error)
	CreateRepo(ctx context.Context, owner, name string, onOrg bool) (*model.Repository, error)

	CreateWebhook(ctx context.Context, owner, repo, hookURL string) (*model.Webhook, error)
	CreateFileOnBranch(ctx context.Context, input *CreateFileInput) error
	CreatePullRequest(ctx context.Context, input *CreatePullRequestInput) (*model.PullRequest, error)
}

type CreateFileInput struct {
	Owner      string
	Repo       string
	Path       string
	Content    []byte
	Message    string
	BaseBranch string
	NewBranch  types.BranchName
}

type CreatePullRequestInput struct {
	Owner string
	Repo  string
	Title string
	Head  string
	Base  string
}

// CommandRunner runs one external binary (git, kubectl, pass). Stdout and
// stderr are returned regardless of the exit status so callers can inspect
// them when err is non-nil.
type CommandRunner interface {
	Run(ctx context.Context, args ...string) (stdout, stderr string, err error)
	RunStdin(ctx context.Context, stdin io.Reader, args ...string) (stdout, stderr string, err error)
	// LookPath reports whether the binary exists at all, without running it.
	LookPath() error
}
