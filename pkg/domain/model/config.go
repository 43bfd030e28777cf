package model

import (
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pacforge/pacforge/pkg/domain/types"
)

// Config is the resolved configuration consumed read-only by every
// provisioner. Secret-folder values have already been merged in by the CLI
// layer, so the provisioners never touch the environment themselves.
type Config struct {
	BaseURL     string
	Username    string
	Password    types.Password
	RepoOwner   string
	SkipTLS     bool
	WebhookURL  string
	SmeeURL     string
	InternalURL string
}

// Owner returns the organization/user segment of RepoOwner, which may be
// given in "org/user" form.
func (x *Config) Owner() string {
	if i := strings.Index(x.RepoOwner, "/"); i >= 0 {
		return x.RepoOwner[:i]
	}
	return x.RepoOwner
}

func (x *Config) Validate() error {
	var missing []string
	if x.BaseURL == "" {
		missing = append(missing, "forgejo-url")
	}
	if x.Username == "" {
		missing = append(missing, "username")
	}
	if x.Password == "" {
		missing = append(missing, "password")
	}
	if x.RepoOwner == "" {
		missing = append(missing, "repo-owner")
	}
	if len(missing) > 0 {
		return goerr.Wrap(types.ErrConfigRequired, "required configuration is missing", goerr.V("missing", missing))
	}
	return nil
}

func (x *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("BaseURL", x.BaseURL),
		slog.String("Username", x.Username),
		slog.Int("Password.len", len(x.Password)),
		slog.String("RepoOwner", x.RepoOwner),
		slog.Bool("SkipTLS", x.SkipTLS),
		slog.String("WebhookURL", x.WebhookURL),
		slog.String("SmeeURL", x.SmeeURL),
		slog.String("InternalURL", x.InternalURL),
	)
}
