package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pacforge/pacforge/pkg/cli/config"
	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/domain/types"
	"github.com/pacforge/pacforge/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func checkoutCommand() *cli.Command {
	var forgeCfg config.Forge

	return &cli.Command{
		Name:      "checkout",
		Usage:     "Clone an existing repository with a fresh token",
		ArgsUsage: "<repo|owner/repo> <destination>",
		Flags:     forgeCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 2 {
				return goerr.Wrap(types.ErrInvalidOption, "usage: checkout <repo|owner/repo> <destination>")
			}

			cfg, err := forgeCfg.Resolve(ctx, passRunner())
			if err != nil {
				return err
			}

			uc := usecase.New(newClients(cfg))
			return uc.ProvisionCheckout(ctx, &model.ProvisionCheckoutInput{
				Config:      cfg,
				Repo:        c.Args().Get(0),
				Destination: c.Args().Get(1),
			})
		},
	}
}
