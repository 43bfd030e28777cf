package model

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pacforge/pacforge/pkg/domain/types"
)

// AccessToken is an API token owned by the authenticated user. Tokens are
// named deterministically per workflow so that a re-run can find and replace
// a stale token of the same name.
type AccessToken struct {
	ID     int64
	Name   string
	Secret types.TokenSecret
}

type Repository struct {
	ID            int64
	Name          string
	FullName      string
	Owner         string
	CloneURL      string
	HTMLURL       string
	SSHURL        string
	DefaultBranch string
	Private       bool
}

type Webhook struct {
	ID     int64
	URL    string
	Events []string
}

type PullRequest struct {
	ID      int64
	Number  int
	Title   string
	HTMLURL string
	Head    string
	Base    string
}

// NewBranchName generates a branch name from the given time. The resolution
// is one second, so two invocations within the same second collide. That is
// accepted: concurrent runs against the same repository race anyway.
func NewBranchName(t time.Time) types.BranchName {
	return types.BranchName(fmt.Sprintf("pac-test-%d", t.Unix()))
}

// RepoCloneURL builds the plain clone URL of a repository on the forge.
func RepoCloneURL(baseURL, owner, name string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse forge URL", goerr.V("url", baseURL))
	}
	return fmt.Sprintf("%s://%s/%s/%s.git", u.Scheme, u.Host, owner, name), nil
}

// AuthCloneURL embeds a credential into the userinfo component of a clone
// URL. Query and fragment are dropped.
func AuthCloneURL(rawURL, user, credential string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse clone URL", goerr.V("url", rawURL))
	}
	u.User = url.UserPassword(user, credential)
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// SplitRepoArg parses an "owner/name" repository argument. Unqualified names
// fall back to the configured owner.
func SplitRepoArg(arg string, cfg *Config) (owner, name string) {
	if i := strings.Index(arg, "/"); i >= 0 {
		return arg[:i], arg[i+1:]
	}
	return cfg.Owner(), arg
}
