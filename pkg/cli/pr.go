package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/pacforge/pacforge/pkg/cli/config"
	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/domain/types"
	"github.com/pacforge/pacforge/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func prCommand() *cli.Command {
	var (
		forgeCfg     config.Forge
		targetBranch string
		title        string
		pipelineFile string
		noOpen       bool
	)

	return &cli.Command{
		Name:      "pr",
		Usage:     "Open a pull request carrying a PipelineRun file",
		ArgsUsage: "<repo>",
		Flags: slice.Flatten(forgeCfg.Flags(), []cli.Flag{
			&cli.StringFlag{
				Name:        "target-branch",
				Usage:       "Branch the pull request targets",
				Destination: &targetBranch,
				Value:       "main",
			},
			&cli.StringFlag{
				Name:        "title",
				Usage:       "Pull request title (auto-generated when empty)",
				Destination: &title,
			},
			&cli.StringFlag{
				Name:        "pipelinerun-file",
				Usage:       "PipelineRun YAML committed to the pull request branch",
				Destination: &pipelineFile,
				Value:       "pr-noop.yaml",
			},
			&cli.BoolFlag{
				Name:        "no-open",
				Usage:       "Do not open the pull request in a browser",
				Destination: &noOpen,
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

			uc := usecase.New(newClients(cfg))
			return uc.ProvisionPR(ctx, &model.ProvisionPRInput{
				Config:       cfg,
				Name:         name,
				TargetBranch: targetBranch,
				Title:        title,
				PipelineFile: pipelineFile,
				OpenBrowser:  !noOpen,
			})
		},
	}
}
