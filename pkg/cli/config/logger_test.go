package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hl7risk/pkg/cli/config"
	"github.com/secmon-lab/hl7risk/pkg/utils/logging"
)

func TestLogger_Configure(t *testing.T) {
	original := logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	t.Run("writes json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hl7risk.log")
		closer, err := config.NewLoggerForTest("debug", "json", path).Configure()
		gt.NoError(t, err).Required()

		logging.Default().Debug("catalog loaded", "factors", 8)
		closer()

		data, err := os.ReadFile(path)
		gt.NoError(t, err).Required()
		gt.String(t, string(data)).Contains(`"msg":"catalog loaded"`)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := config.NewLoggerForTest("loud", "console", "stderr").Configure()
		gt.Error(t, err).Is(config.ErrInvalidLoggerInput)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := config.NewLoggerForTest("info", "xml", "stderr").Configure()
		gt.Error(t, err).Is(config.ErrInvalidLoggerInput)
	})
}

func TestSentry_Configure(t *testing.T) {
	t.Run("disabled without dsn", func(t *testing.T) {
		cfg := config.NewSentryForTest("", "test")
		gt.Bool(t, cfg.Enabled()).False()

		closer, err := cfg.Configure("test")
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("rejects malformed dsn", func(t *testing.T) {
		_, err := config.NewSentryForTest("not a dsn", "test").Configure("test")
		gt.Value(t, err).NotNil()
	})
}
