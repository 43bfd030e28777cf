package config_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pacforge/pacforge/pkg/cli/config"
	"github.com/pacforge/pacforge/pkg/domain/interfaces"
	"github.com/pacforge/pacforge/pkg/domain/mock"
	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// resolveWith parses args through the real flag set and resolves the
// configuration, the same way the commands do.
func resolveWith(t *testing.T, args []string, pass interfaces.CommandRunner) (*model.Config, error) {
	t.Helper()

	var forge config.Forge
	var cfg *model.Config
	var resolveErr error

	cmd := &cli.Command{
		Name:  "test",
		Flags: forge.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, resolveErr = forge.Resolve(ctx, pass)
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return cfg, resolveErr
}

func noPass() *mock.CommandRunnerMock {
	return &mock.CommandRunnerMock{
		LookPathFunc: func() error { return types.ErrCommandNotFound },
	}
}

func clearFolders(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvPassSecretFolder, "")
	t.Setenv(config.EnvSecretFolder, "")
}

func TestForgeResolve(t *testing.T) {
	baseArgs := []string{
		"--forgejo-url", "https://forge.example.com/",
		"--username", "alice",
		"--password", "hunter2",
		"--repo-owner", "alice",
	}

	t.Run("flags alone are enough", func(t *testing.T) {
		clearFolders(t)
		cfg := gt.R1(resolveWith(t, baseArgs, noPass())).NoError(t)
		gt.V(t, cfg.BaseURL).Equal("https://forge.example.com")
		gt.V(t, cfg.Username).Equal("alice")
		gt.V(t, cfg.Password).Equal(types.Password("hunter2"))
		gt.V(t, cfg.RepoOwner).Equal("alice")
		gt.False(t, cfg.SkipTLS)
	})

	t.Run("env sources feed the flags", func(t *testing.T) {
		clearFolders(t)
		t.Setenv("TEST_GITEA_API_URL", "https://env.example.com")
		t.Setenv("TEST_GITEA_USERNAME", "bob")
		t.Setenv("TEST_GITEA_PASSWORD", "pw")
		t.Setenv("TEST_GITEA_REPO_OWNER", "bob")
		t.Setenv("PAC_WEBHOOK_URL", "https://hook.example.com")

		cfg := gt.R1(resolveWith(t, nil, noPass())).NoError(t)
		gt.V(t, cfg.BaseURL).Equal("https://env.example.com")
		gt.V(t, cfg.Username).Equal("bob")
		gt.V(t, cfg.WebhookURL).Equal("https://hook.example.com")
	})

	t.Run("missing fields list every source", func(t *testing.T) {
		clearFolders(t)
		_, err := resolveWith(t, []string{"--forgejo-url", "https://forge.example.com"}, noPass())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrConfigRequired))
		// Each missing field names its flag, env var and folder key.
		gt.S(t, err.Error()).Contains("required configuration is missing")
	})

	t.Run("plain secret folder overrides flags", func(t *testing.T) {
		dir := t.TempDir()
		gt.NoError(t, os.WriteFile(filepath.Join(dir, "api-url"), []byte("https://folder.example.com\n"), 0600))
		gt.NoError(t, os.WriteFile(filepath.Join(dir, "password"), []byte("folder-pw"), 0600))
		gt.NoError(t, os.WriteFile(filepath.Join(dir, "smee"), []byte("https://smee.io/xyz"), 0600))
		// Empty entries count as absent.
		gt.NoError(t, os.WriteFile(filepath.Join(dir, "repo-owner"), []byte("\n"), 0600))

		t.Setenv(config.EnvPassSecretFolder, "")
		t.Setenv(config.EnvSecretFolder, dir)

		cfg := gt.R1(resolveWith(t, baseArgs, noPass())).NoError(t)
		gt.V(t, cfg.BaseURL).Equal("https://folder.example.com")
		gt.V(t, cfg.Password).Equal(types.Password("folder-pw"))
		gt.V(t, cfg.SmeeURL).Equal("https://smee.io/xyz")
		gt.V(t, cfg.RepoOwner).Equal("alice") // empty entry falls back to the flag
	})

	t.Run("pass folder takes priority over plain folder", func(t *testing.T) {
		dir := t.TempDir()
		gt.NoError(t, os.WriteFile(filepath.Join(dir, "username"), []byte("from-files"), 0600))

		t.Setenv(config.EnvPassSecretFolder, "forge/test")
		t.Setenv(config.EnvSecretFolder, dir)

		pass := &mock.CommandRunnerMock{
			LookPathFunc: func() error { return nil },
			RunFunc: func(ctx context.Context, args ...string) (string, string, error) {
				if args[0] != "show" {
					return "", "", errors.New("unexpected invocation")
				}
				switch strings.TrimPrefix(args[1], "forge/test/") {
				case "username":
					return "from-pass\nextra metadata\n", "", nil
				case "internal-url":
					return "http://forgejo-http.forgejo:3000\n", "", nil
				default:
					return "", "not in the password store", errors.New("exit status 1")
				}
			},
		}

		cfg := gt.R1(resolveWith(t, baseArgs, pass)).NoError(t)
		gt.V(t, cfg.Username).Equal("from-pass") // first line only
		gt.V(t, cfg.InternalURL).Equal("http://forgejo-http.forgejo:3000")
	})

	t.Run("pass folder without the binary is fatal", func(t *testing.T) {
		t.Setenv(config.EnvPassSecretFolder, "forge/test")
		t.Setenv(config.EnvSecretFolder, "")

		_, err := resolveWith(t, baseArgs, noPass())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrCommandNotFound))
		gt.S(t, err.Error()).Contains("GITEA_SECRET_FOLDER")
	})

	t.Run("skip-tls folder entry is parsed as a bool", func(t *testing.T) {
		dir := t.TempDir()
		gt.NoError(t, os.WriteFile(filepath.Join(dir, "skip-tls"), []byte("true\n"), 0600))
		t.Setenv(config.EnvPassSecretFolder, "")
		t.Setenv(config.EnvSecretFolder, dir)

		cfg := gt.R1(resolveWith(t, baseArgs, noPass())).NoError(t)
		gt.True(t, cfg.SkipTLS)
	})

	t.Run("bogus skip-tls folder entry is rejected", func(t *testing.T) {
		dir := t.TempDir()
		gt.NoError(t, os.WriteFile(filepath.Join(dir, "skip-tls"), []byte("maybe"), 0600))
		t.Setenv(config.EnvPassSecretFolder, "")
		t.Setenv(config.EnvSecretFolder, dir)

		_, err := resolveWith(t, baseArgs, noPass())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestProbe(t *testing.T) {
	ctx := context.Background()

	t.Run("https URLs are not probed", func(t *testing.T) {
		cfg := &model.Config{BaseURL: "https://unreachable.invalid"}
		gt.NoError(t, config.Probe(ctx, cfg))
	})

	t.Run("plain http forge passes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		cfg := &model.Config{BaseURL: srv.URL}
		gt.NoError(t, config.Probe(ctx, cfg))
	})

	t.Run("redirect to untrusted https is fatal", func(t *testing.T) {
		tlsSrv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer tlsSrv.Close()
		srv := httptest.NewServer(http.RedirectHandler(tlsSrv.URL, http.StatusMovedPermanently))
		defer srv.Close()

		cfg := &model.Config{BaseURL: srv.URL}
		err := config.Probe(ctx, cfg)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("--skip-tls")
	})

	t.Run("redirect passes with skip-tls", func(t *testing.T) {
		tlsSrv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer tlsSrv.Close()
		srv := httptest.NewServer(http.RedirectHandler(tlsSrv.URL, http.StatusMovedPermanently))
		defer srv.Close()

		cfg := &model.Config{BaseURL: srv.URL, SkipTLS: true}
		gt.NoError(t, config.Probe(ctx, cfg))
	})

	t.Run("unreachable forge is only a warning", func(t *testing.T) {
		cfg := &model.Config{BaseURL: "http://127.0.0.1:1"}
		gt.NoError(t, config.Probe(ctx, cfg))
	})
}
