package exec_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pacforge/pacforge/pkg/domain/types"
	"github.com/pacforge/pacforge/pkg/infra/exec"
)

func TestRun(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		runner := exec.New("sh")
		stdout, stderr, err := runner.Run(context.Background(), "-c", "echo hello")
		gt.NoError(t, err)
		gt.V(t, strings.TrimSpace(stdout)).Equal("hello")
		gt.V(t, stderr).Equal("")
	})

	t.Run("captures stderr on failure", func(t *testing.T) {
		runner := exec.New("sh")
		_, stderr, err := runner.Run(context.Background(), "-c", "echo oops >&2; exit 3")
		gt.Error(t, err)
		gt.V(t, strings.TrimSpace(stderr)).Equal("oops")
	})

	t.Run("missing binary fails", func(t *testing.T) {
		runner := exec.New("pacforge-no-such-binary")
		_, _, err := runner.Run(context.Background(), "anything")
		gt.Error(t, err)
	})
}

func TestRunStdin(t *testing.T) {
	runner := exec.New("sh")
	stdout, _, err := runner.RunStdin(context.Background(), strings.NewReader("from stdin\n"), "-c", "cat")
	gt.NoError(t, err)
	gt.V(t, strings.TrimSpace(stdout)).Equal("from stdin")
}

func TestLookPath(t *testing.T) {
	t.Run("existing binary", func(t *testing.T) {
		gt.NoError(t, exec.New("sh").LookPath())
	})

	t.Run("missing binary yields ErrCommandNotFound", func(t *testing.T) {
		err := exec.New("pacforge-no-such-binary").LookPath()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrCommandNotFound))
	})
}
