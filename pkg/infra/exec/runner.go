package exec

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pacforge/pacforge/pkg/domain/interfaces"
	"github.com/pacforge/pacforge/pkg/domain/types"
)

// Runner invokes one external binary synchronously. Exit codes gate the
// provisioning steps, so stdout/stderr are always returned for inspection
// even when the command fails.
type Runner struct {
	bin string
}

var _ interfaces.CommandRunner = (*Runner)(nil)

func New(bin string) *Runner {
	return &Runner{bin: bin}
}

func (x *Runner) LookPath() error {
	if _, err := exec.LookPath(x.bin); err != nil {
		return goerr.Wrap(types.ErrCommandNotFound, "binary is not available", goerr.V("bin", x.bin))
	}
	return nil
}

func (x *Runner) Run(ctx context.Context, args ...string) (string, string, error) {
	return x.RunStdin(ctx, nil, args...)
}

func (x *Runner) RunStdin(ctx context.Context, stdin io.Reader, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, x.bin, args...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), stderr.String(), goerr.Wrap(err, "command failed",
			goerr.V("bin", x.bin),
			goerr.V("args", args),
		)
	}

	return stdout.String(), stderr.String(), nil
}
