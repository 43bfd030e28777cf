package cli

import (
	"github.com/pacforge/pacforge/pkg/domain/model"
	"github.com/pacforge/pacforge/pkg/infra"
	"github.com/pacforge/pacforge/pkg/infra/exec"
	"github.com/pacforge/pacforge/pkg/infra/forge"
)

func newClients(cfg *model.Config) *infra.Clients {
	client := forge.New(cfg.BaseURL, cfg.Username, cfg.Password,
		forge.WithSkipTLS(cfg.SkipTLS),
	)
	return infra.New(infra.WithForge(client))
}

// passRunner runs the `pass` password-store binary for secret folder
// resolution.
func passRunner() *exec.Runner {
	return exec.New("pass")
}
