package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pacforge/pacforge/pkg/domain/types"
	"github.com/pacforge/pacforge/pkg/utils/logging"
)

func TestConfigure(t *testing.T) {
	t.Run("configure with json format to stdout", func(t *testing.T) {
		err := logging.Configure("json", "info", "stdout")
		gt.NoError(t, err)
	})

	t.Run("configure with text format", func(t *testing.T) {
		err := logging.Configure("text", "debug", "stdout")
		gt.NoError(t, err)
	})

	t.Run("configure with invalid format returns error", func(t *testing.T) {
		err := logging.Configure("invalid", "info", "stdout")
		gt.Error(t, err)
	})

	t.Run("configure with invalid level returns error", func(t *testing.T) {
		err := logging.Configure("json", "invalid", "stdout")
		gt.Error(t, err)
	})
}

func TestSecretMasking(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	gt.NoError(t, logging.Configure("json", "info", path))
	defer func() {
		gt.NoError(t, logging.Configure("text", "info", "stdout"))
	}()

	logging.Default().Info("credentials loaded",
		"password", types.Password("hunter2"),
		"token", types.TokenSecret("sha1-abcdef"),
	)

	body := gt.R1(os.ReadFile(path)).NoError(t)
	gt.False(t, strings.Contains(string(body), "hunter2"))
	gt.False(t, strings.Contains(string(body), "sha1-abcdef"))
}

func TestDefault(t *testing.T) {
	// Test that Default() returns a functional logger
	logger := logging.Default()
	logger.Info("test message", "key", "value")
}
