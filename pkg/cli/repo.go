package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/pacforge/pacforge/pkg/cli/config"
	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/domain/types"
	"github.com/pacforge/pacforge/pkg/usecase"
	"github.com/pacforge/pacforge/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func repoCommand() *cli.Command {
	var (
		forgeCfg    config.Forge
		targetNS    string
		localRepo   string
		smeeURL     string
		internalURL string
		onOrg       bool
		createPAC   bool
	)

	return &cli.Command{
		Name:      "repo",
		Usage:     "Create a repository with token, webhook, cluster registration and local clone",
		ArgsUsage: "<name>",
		Flags: slice.Flatten(forgeCfg.Flags(), []cli.Flag{
			&cli.StringFlag{
				Name:        "target-ns",
				Usage:       "Namespace for the cluster registration (defaults to the repository name)",
				Destination: &targetNS,
			},
			&cli.StringFlag{
				Name:        "local-repo",
				Usage:       "Clone destination (defaults to /tmp/<name>)",
				Destination: &localRepo,
			},
			&cli.BoolFlag{
				Name:        "on-org",
				Usage:       "Create the repository under the owner organization",
				Destination: &onOrg,
			},
			&cli.StringFlag{
				Name:        "smee-url",
				Usage:       "Webhook relay URL, used when --webhook-url is not set",
				Sources:     cli.EnvVars("TEST_GITEA_SMEEURL"),
				Destination: &smeeURL,
			},
			&cli.StringFlag{
				Name:        "internal-url",
				Usage:       "Forge URL as seen from inside the cluster",
				Sources:     cli.EnvVars("TEST_GITEA_INTERNAL_URL"),
				Destination: &internalURL,
				Value:       "http://forgejo-http.forgejo:3000",
			},
			&cli.BoolFlag{
				Name:        "create-pac-cr",
				Usage:       "Create the namespace, secret and Repository resource on the cluster",
				Destination: &createPAC,
				Value:       true,
			},
		}),
		Action: func(ctx context.Context, c *cli.Command) error {
			name := c.Args().First()
			if name == "" {
				return goerr.Wrap(types.ErrInvalidOption, "repository name argument is required")
			}

			cfg, err := forgeCfg.Resolve(ctx, passRunner())
			if err != nil {
				return err
			}
			// Secret folder entries win; the flags only fill the gaps.
			if cfg.SmeeURL == "" {
				cfg.SmeeURL = smeeURL
			}
			if cfg.InternalURL == "" {
				cfg.InternalURL = internalURL
			}

			if err := config.Probe(ctx, cfg); err != nil {
				return err
			}

			hookURL := cfg.WebhookURL
			if hookURL == "" {
				hookURL = cfg.SmeeURL
			}

			logging.From(ctx).Info("provisioning repository",
				slog.String("name", name),
				slog.Any("config", cfg),
			)

			uc := usecase.New(newClients(cfg))
			return uc.ProvisionRepo(ctx, &model.ProvisionRepoInput{
				Config:      cfg,
				Name:        name,
				Namespace:   targetNS,
				LocalDir:    localRepo,
				OnOrg:       onOrg,
				WebhookURL:  hookURL,
				InternalURL: cfg.InternalURL,
				CreatePAC:   createPAC,
			})
		},
	}
}
