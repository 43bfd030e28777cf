package config

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pacforge/pacforge/pkg/domain/interfaces"
	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/domain/types"
	"github.com/pacforge/pacforge/pkg/utils/logging"
	"github.com/pacforge/pacforge/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// Secret folder environment variables. When one of them is set, the folder's
// entries take priority over flags and their env sources.
const (
	EnvPassSecretFolder = "GITEA_PASS_SECRET_FOLDER"
	EnvSecretFolder     = "GITEA_SECRET_FOLDER"
)

// folderKeys are the entry names looked up in a secret folder, in either
// backend. An empty entry counts as absent.
var folderKeys = []string{
	"api-url", "username", "password", "repo-owner", "smee", "skip-tls", "internal-url",
}

type Forge struct {
	baseURL    string
	username   string
	password   types.Password `masq:"secret"`
	repoOwner  string
	skipTLS    bool
	webhookURL string
}

func (x *Forge) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "forgejo-url",
			Usage:       "Base URL of the Forgejo instance",
			Category:    "Forge",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("TEST_GITEA_API_URL"),
		},
		&cli.StringFlag{
			Name:        "username",
			Usage:       "Forgejo user owning the fixtures",
			Category:    "Forge",
			Destination: &x.username,
			Sources:     cli.EnvVars("TEST_GITEA_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "password",
			Usage:       "Password of the Forgejo user",
			Category:    "Forge",
			Destination: (*string)(&x.password),
			Sources:     cli.EnvVars("TEST_GITEA_PASSWORD"),
		},
		&cli.StringFlag{
			Name:        "repo-owner",
			Usage:       "Owner of created repositories, optionally 'org/user'",
			Category:    "Forge",
			Destination: &x.repoOwner,
			Sources:     cli.EnvVars("TEST_GITEA_REPO_OWNER"),
		},
		&cli.BoolFlag{
			Name:        "skip-tls",
			Usage:       "Skip TLS certificate verification",
			Category:    "Forge",
			Destination: &x.skipTLS,
			Sources:     cli.EnvVars("TEST_GITEA_SKIP_TLS"),
		},
		&cli.StringFlag{
			Name:        "webhook-url",
			Usage:       "Webhook target URL, takes priority over the smee URL",
			Category:    "Forge",
			Destination: &x.webhookURL,
			Sources:     cli.EnvVars("PAC_WEBHOOK_URL"),
		},
	}
}

// Resolve merges flag values with the secret folder and returns the
// effective configuration. pass runs the `pass` binary when
// GITEA_PASS_SECRET_FOLDER is set.
func (x *Forge) Resolve(ctx context.Context, pass interfaces.CommandRunner) (*model.Config, error) {
	cfg := &model.Config{
		BaseURL:    strings.TrimSuffix(x.baseURL, "/"),
		Username:   x.username,
		Password:   x.password,
		RepoOwner:  x.repoOwner,
		SkipTLS:    x.skipTLS,
		WebhookURL: x.webhookURL,
	}

	secrets, err := loadSecretFolder(ctx, pass)
	if err != nil {
		return nil, err
	}
	if v, ok := secrets["api-url"]; ok {
		cfg.BaseURL = strings.TrimSuffix(v, "/")
	}
	if v, ok := secrets["username"]; ok {
		cfg.Username = v
	}
	if v, ok := secrets["password"]; ok {
		cfg.Password = types.Password(v)
	}
	if v, ok := secrets["repo-owner"]; ok {
		cfg.RepoOwner = v
	}
	if v, ok := secrets["smee"]; ok {
		cfg.SmeeURL = v
	}
	if v, ok := secrets["internal-url"]; ok {
		cfg.InternalURL = v
	}
	if v, ok := secrets["skip-tls"]; ok {
		skip, err := strconv.ParseBool(v)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid skip-tls entry in secret folder", goerr.V("value", v))
		}
		cfg.SkipTLS = skip
	}

	if err := validateSources(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateSources reports every missing required field together with all the
// places that could have provided it.
func validateSources(cfg *model.Config) error {
	required := []struct {
		value   string
		sources string
	}{
		{cfg.BaseURL, "--forgejo-url / $TEST_GITEA_API_URL / <secret folder>/api-url"},
		{cfg.Username, "--username / $TEST_GITEA_USERNAME / <secret folder>/username"},
		{string(cfg.Password), "--password / $TEST_GITEA_PASSWORD / <secret folder>/password"},
		{cfg.RepoOwner, "--repo-owner / $TEST_GITEA_REPO_OWNER / <secret folder>/repo-owner"},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.sources)
		}
	}
	if len(missing) > 0 {
		return goerr.Wrap(types.ErrConfigRequired, "required configuration is missing", goerr.V("missing", missing))
	}
	return nil
}

func loadSecretFolder(ctx context.Context, pass interfaces.CommandRunner) (map[string]string, error) {
	if folder := os.Getenv(EnvPassSecretFolder); folder != "" {
		if err := pass.LookPath(); err != nil {
			return nil, goerr.Wrap(err, "pass binary not found, unset GITEA_PASS_SECRET_FOLDER or switch to GITEA_SECRET_FOLDER",
				goerr.V("folder", folder))
		}
		out := map[string]string{}
		for _, key := range folderKeys {
			stdout, _, err := pass.Run(ctx, "show", folder+"/"+key)
			if err != nil {
				continue // entry does not exist
			}
			if v := firstLine(stdout); v != "" {
				out[key] = v
			}
		}
		return out, nil
	}

	if dir := os.Getenv(EnvSecretFolder); dir != "" {
		out := map[string]string{}
		for _, key := range folderKeys {
			body, err := os.ReadFile(filepath.Join(dir, key))
			if err != nil {
				continue
			}
			if v := strings.TrimSpace(string(body)); v != "" {
				out[key] = v
			}
		}
		return out, nil
	}

	return nil, nil
}

// firstLine returns the first line of a pass entry; secondary lines carry
// metadata that is not part of the secret.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// Probe sends a HEAD request to a plain-http forge URL and inspects where it
// lands. Forgejo deployments behind an ingress often redirect to HTTPS with
// a self-signed certificate, which every later API call would trip over.
func Probe(ctx context.Context, cfg *model.Config) error {
	if !strings.HasPrefix(cfg.BaseURL, "http://") {
		return nil
	}

	client := &http.Client{Timeout: 5 * time.Second}
	if cfg.SkipTLS {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, cfg.BaseURL, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build probe request", goerr.V("url", cfg.BaseURL))
	}

	resp, err := client.Do(req)
	if err != nil {
		var certErr *tls.CertificateVerificationError
		if errors.As(err, &certErr) {
			return goerr.Wrap(err, "forge redirects to HTTPS with an untrusted certificate, pass --skip-tls or fix the certificate",
				goerr.V("url", cfg.BaseURL))
		}
		logging.From(ctx).Warn("forge probe failed", "url", cfg.BaseURL, "error", err)
		return nil
	}
	defer safe.Close(resp.Body)

	if resp.Request.URL.Scheme == "https" && !cfg.SkipTLS {
		logging.From(ctx).Warn("forge redirects to HTTPS, consider an https:// URL or --skip-tls",
			"url", cfg.BaseURL, "landed", resp.Request.URL.String())
	}
	return nil
}

func (x *Forge) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("BaseURL", x.baseURL),
		slog.String("Username", x.username),
		slog.Int("Password.len", len(x.password)),
		slog.String("RepoOwner", x.repoOwner),
		slog.Bool("SkipTLS", x.skipTLS),
		slog.String("WebhookURL", x.webhookURL),
	)
}
