package usecase_test

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pacforge/pacforge/pkg/domain/interfaces"
	"github.com/pacforge/pacforge/pkg/domain/mock"
	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/domain/types"
)

func testConfig() *model.Config {
	return &model.Config{
		BaseURL:   "https://forge.example.com",
		Username:  "alice",
		Password:  "hunter2",
		RepoOwner: "alice",
	}
}

// forgeState is a stateful fake forge backing a ForgeClientMock. It enforces
// the same uniqueness rules as the real forge: duplicate token names and
// duplicate repositories are rejected.
type forgeState struct {
	Mock   *mock.ForgeClientMock
	tokens map[string]model.AccessToken
	repos  map[string]*model.Repository
	hooks  []string
	prs    []*model.PullRequest
	nextID int64
}

func newForgeState() *forgeState {
	s := &forgeState{
		tokens: map[string]model.AccessToken{},
		repos:  map[string]*model.Repository{},
	}

	m := &mock.ForgeClientMock{}
	m.WithTokenFunc = func(secret types.TokenSecret) interfaces.ForgeClient {
		return m
	}
	m.ListTokensFunc = func(ctx context.Context) ([]model.AccessToken, error) {
		var list []model.AccessToken
		for _, t := range s.tokens {
			list = append(list, t)
		}
		return list, nil
	}
	m.CreateTokenFunc = func(ctx context.Context, name string) (*model.AccessToken, error) {
		if _, ok := s.tokens[name]; ok {
			return nil, goerr.Wrap(types.ErrUnexpectedResponse, "token name already used", goerr.V("status", 400))
		}
		s.nextID++
		token := model.AccessToken{
			ID:     s.nextID,
			Name:   name,
			Secret: types.TokenSecret(fmt.Sprintf("secret-%s-%d", name, s.nextID)),
		}
		s.tokens[name] = token
		return &token, nil
	}
	m.DeleteTokenFunc = func(ctx context.Context, id int64) error {
		for name, t := range s.tokens {
			if t.ID == id {
				delete(s.tokens, name)
				return nil
			}
		}
		return goerr.Wrap(types.ErrUnexpectedResponse, "token not found", goerr.V("status", 404))
	}
	m.DeleteRepoFunc = func(ctx context.Context, owner, name string) (bool, error) {
		key := owner + "/" + name
		if _, ok := s.repos[key]; ok {
			delete(s.repos, key)
			return true, nil
		}
		return false, nil
	}
	m.CreateRepoFunc = func(ctx context.Context, owner, name string, onOrg bool) (*model.Repository, error) {
		key := owner + "/" + name
		if _, ok := s.repos[key]; ok {
			return nil, goerr.Wrap(types.ErrRepoAlreadyExists, "repository already exists")
		}
		s.nextID++
		repo := &model.Repository{
			ID:            s.nextID,
			Name:          name,
			FullName:      key,
			Owner:         owner,
			CloneURL:      "https://forge.example.com/" + key + ".git",
			HTMLURL:       "https://forge.example.com/" + key,
			DefaultBranch: "main",
		}
		s.repos[key] = repo
		return repo, nil
	}
	m.GetRepoFunc = func(ctx context.Context, owner, name string) (*model.Repository, error) {
		repo, ok := s.repos[owner+"/"+name]
		if !ok {
			return nil, goerr.Wrap(types.ErrUnexpectedResponse, "repository not found", goerr.V("status", 404))
		}
		return repo, nil
	}
	m.CreateWebhookFunc = func(ctx context.Context, owner, repo, hookURL string) (*model.Webhook, error) {
		s.hooks = append(s.hooks, hookURL)
		return &model.Webhook{ID: 1, URL: hookURL}, nil
	}
	m.CreateFileOnBranchFunc = func(ctx context.Context, input *interfaces.CreateFileInput) error {
		return nil
	}
	m.CreatePullRequestFunc = func(ctx context.Context, input *interfaces.CreatePullRequestInput) (*model.PullRequest, error) {
		s.nextID++
		pr := &model.PullRequest{
			ID:      s.nextID,
			Number:  int(s.nextID),
			Title:   input.Title,
			HTMLURL: fmt.Sprintf("https://forge.example.com/%s/%s/pulls/%d", input.Owner, input.Repo, s.nextID),
			Head:    input.Head,
			Base:    input.Base,
		}
		s.prs = append(s.prs, pr)
		return pr, nil
	}

	s.Mock = m
	return s
}

// okRunner returns a CommandRunnerMock that succeeds on everything.
func okRunner() *mock.CommandRunnerMock {
	return &mock.CommandRunnerMock{
		LookPathFunc: func() error { return nil },
		RunFunc: func(ctx context.Context, args ...string) (string, string, error) {
			return "", "", nil
		},
		RunStdinFunc: func(ctx context.Context, stdin io.Reader, args ...string) (string, string, error) {
			return "", "", nil
		},
	}
}
