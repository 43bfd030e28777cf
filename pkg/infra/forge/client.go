package forge

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"net/http"
	"strings"

	"code.gitea.io/sdk/gitea"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pacforge/pacforge/pkg/domain/interfaces"
	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/domain/types"
)

// Client adapts the Gitea SDK (Forgejo keeps API compatibility) to the
// ForgeClient port. Token endpoints authenticate with basic auth using the
// configured username and password; everything else sends the token
// installed via WithToken.
type Client struct {
	baseURL    string
	username   string
	password   types.Password
	token      types.TokenSecret
	httpClient *http.Client
}

var _ interfaces.ForgeClient = (*Client)(nil)

type Option func(*Client)

func WithSkipTLS(skip bool) Option {
	return func(x *Client) {
		if skip {
			x.httpClient = &http.Client{
				Transport: &http.Transport{
					TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
				},
			}
		}
	}
}

func New(baseURL, username string, password types.Password, options ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		password:   password,
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Client) WithToken(secret types.TokenSecret) interfaces.ForgeClient {
	client := *x
	client.token = secret
	return &client
}

// basic builds an SDK client with username/password auth. The forge only
// accepts basic auth on the token endpoints.
func (x *Client) basic(ctx context.Context) (*gitea.Client, error) {
	return x.sdk(ctx, gitea.SetBasicAuth(x.username, string(x.password)))
}

// api builds an SDK client for non-token endpoints, preferring the installed
// token.
func (x *Client) api(ctx context.Context) (*gitea.Client, error) {
	if x.token != "" {
		return x.sdk(ctx, gitea.SetToken(string(x.token)))
	}
	return x.sdk(ctx, gitea.SetBasicAuth(x.username, string(x.password)))
}

func (x *Client) sdk(ctx context.Context, auth gitea.ClientOption) (*gitea.Client, error) {
	client, err := gitea.NewClient(x.baseURL,
		gitea.SetHTTPClient(x.httpClient),
		gitea.SetContext(ctx),
		// Forgejo version strings do not parse as Gitea versions.
		gitea.SetGiteaVersion(""),
		auth,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build forge client", goerr.V("url", x.baseURL))
	}
	return client, nil
}

// classify wraps an SDK error. A response carrying a status code means the
// forge rejected the request; that becomes ErrUnexpectedResponse so callers
// can tell a rejection from an unreachable forge.
func classify(err error, resp *gitea.Response, msg string) error {
	if resp != nil {
		return goerr.Wrap(types.ErrUnexpectedResponse, msg,
			goerr.V("status", resp.StatusCode),
			goerr.V("cause", err.Error()),
		)
	}
	return goerr.Wrap(err, msg)
}

func (x *Client) ListTokens(ctx context.Context) ([]model.AccessToken, error) {
	client, err := x.basic(ctx)
	if err != nil {
		return nil, err
	}

	raw, resp, err := client.ListAccessTokens(gitea.ListAccessTokensOptions{})
	if err != nil {
		return nil, classify(err, resp, "failed to list tokens")
	}

	tokens := make([]model.AccessToken, 0, len(raw))
	for _, t := range raw {
		tokens = append(tokens, model.AccessToken{
			ID:     t.ID,
			Name:   t.Name,
			Secret: types.TokenSecret(t.Token),
		})
	}
	return tokens, nil
}

func (x *Client) CreateToken(ctx context.Context, name string) (*model.AccessToken, error) {
	client, err := x.basic(ctx)
	if err != nil {
		return nil, err
	}

	raw, resp, err := client.CreateAccessToken(gitea.CreateAccessTokenOption{
		Name:   name,
		Scopes: []gitea.AccessTokenScope{gitea.AccessTokenScopeAll},
	})
	if err != nil {
		return nil, classify(err, resp, "failed to create token")
	}

	return &model.AccessToken{
		ID:     raw.ID,
		Name:   raw.Name,
		Secret: types.TokenSecret(raw.Token),
	}, nil
}

func (x *Client) DeleteToken(ctx context.Context, id int64) error {
	client, err := x.basic(ctx)
	if err != nil {
		return err
	}

	resp, err := client.DeleteAccessToken(id)
	if err != nil {
		return classify(err, resp, "failed to delete token")
	}
	return nil
}

func toRepository(raw *gitea.Repository) *model.Repository {
	repo := &model.Repository{
		ID:            raw.ID,
		Name:          raw.Name,
		FullName:      raw.FullName,
		CloneURL:      raw.CloneURL,
		HTMLURL:       raw.HTMLURL,
		SSHURL:        raw.SSHURL,
		DefaultBranch: raw.DefaultBranch,
		Private:       raw.Private,
	}
	if raw.Owner != nil {
		repo.Owner = raw.Owner.UserName
	}
	return repo
}

func (x *Client) GetRepo(ctx context.Context, owner, name string) (*model.Repository, error) {
	client, err := x.api(ctx)
	if err != nil {
		return nil, err
	}

	raw, resp, err := client.GetRepo(owner, name)
	if err != nil {
		return nil, classify(err, resp, "failed to get repository")
	}
	return toRepository(raw), nil
}

func (x *Client) DeleteRepo(ctx context.Context, owner, name string) (bool, error) {
	client, err := x.api(ctx)
	if err != nil {
		return false, err
	}

	resp, err := client.DeleteRepo(owner, name)
	if err != nil {
		// The forge answered: the repository did not exist or cannot be
		// deleted. Deletion is best-effort either way.
		if resp != nil {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to delete repository",
			goerr.V("owner", owner), goerr.V("repo", name))
	}
	return resp.StatusCode == http.StatusNoContent, nil
}

func (x *Client) CreateRepo(ctx context.Context, owner, name string, onOrg bool) (*model.Repository, error) {
	client, err := x.api(ctx)
	if err != nil {
		return nil, err
	}

	opt := gitea.CreateRepoOption{
		Name:        name,
		Private:     false,
		AutoInit:    true,
		Description: "Ephemeral repository for Pipelines-as-Code testing",
	}

	var raw *gitea.Repository
	var resp *gitea.Response
	if onOrg {
		raw, resp, err = client.CreateOrgRepo(owner, opt)
	} else {
		raw, resp, err = client.CreateRepo(opt)
	}
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusConflict {
			// Lost a race with another run that recreated the repository
			// between our delete and create.
			return nil, goerr.Wrap(types.ErrRepoAlreadyExists, "repository already exists",
				goerr.V("owner", owner), goerr.V("repo", name))
		}
		return nil, classify(err, resp, "failed to create repository")
	}
	return toRepository(raw), nil
}

func (x *Client) CreateWebhook(ctx context.Context, owner, repo, hookURL string) (*model.Webhook, error) {
	client, err := x.api(ctx)
	if err != nil {
		return nil, err
	}

	events := []string{"push", "issue_comment", "pull_request"}
	raw, resp, err := client.CreateRepoHook(owner, repo, gitea.CreateHookOption{
		Type:   "forgejo",
		Active: true,
		Config: map[string]string{
			"url":          hookURL,
			"content_type": "json",
		},
		Events: events,
	})
	if err != nil {
		return nil, classify(err, resp, "failed to create webhook")
	}

	return &model.Webhook{ID: raw.ID, URL: hookURL, Events: events}, nil
}

// CreateFileOnBranch commits a file to a new branch in one call. The forge
// creates the branch as a side effect of the first commit to it.
func (x *Client) CreateFileOnBranch(ctx context.Context, input *interfaces.CreateFileInput) error {
	client, err := x.api(ctx)
	if err != nil {
		return err
	}

	_, resp, err := client.CreateFile(input.Owner, input.Repo, input.Path, gitea.CreateFileOptions{
		FileOptions: gitea.FileOptions{
			Message:       input.Message,
			BranchName:    input.BaseBranch,
			NewBranchName: string(input.NewBranch),
		},
		Content: base64.StdEncoding.EncodeToString(input.Content),
	})
	if err != nil {
		return classify(err, resp, "failed to create file on branch")
	}
	return nil
}

func (x *Client) CreatePullRequest(ctx context.Context, input *interfaces.CreatePullRequestInput) (*model.PullRequest, error) {
	client, err := x.api(ctx)
	if err != nil {
		return nil, err
	}

	raw, resp, err := client.CreatePullRequest(input.Owner, input.Repo, gitea.CreatePullRequestOption{
		Title: input.Title,
		Head:  input.Head,
		Base:  input.Base,
	})
	if err != nil {
		return nil, classify(err, resp, "failed to create pull request")
	}

	return &model.PullRequest{
		ID:      raw.ID,
		Number:  int(raw.Index),
		Title:   raw.Title,
		HTMLURL: raw.HTMLURL,
		Head:    input.Head,
		Base:    input.Base,
	}, nil
}
