package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hl7risk/pkg/utils/logging"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)

	logger.Info("assessment calculated", "tier", "Medium", "percentage", 50.0)

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record)).Required()
	gt.Value(t, record["msg"]).Equal("assessment calculated")
	gt.Value(t, record["tier"]).Equal("Medium")
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelWarn, logging.FormatJSON)

	logger.Info("should be dropped")
	gt.Number(t, buf.Len()).Equal(0)

	logger.Warn("should be written")
	gt.String(t, buf.String()).Contains("should be written")
}

func TestNew_RedactsSecrets(t *testing.T) {
	type settings struct {
		Endpoint string
		DSN      string
	}

	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)
	logger.Info("configured", "settings", settings{
		Endpoint: "https://example.com",
		DSN:      "https://key@o0.ingest.sentry.io/1",
	})

	gt.String(t, buf.String()).NotContains("key@o0")
	gt.String(t, buf.String()).Contains("https://example.com")
}

func TestFromAndWith(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)

	ctx := logging.With(context.Background(), logger)
	gt.Value(t, logging.From(ctx)).Equal(logger)

	// Without a logger in context the default is used
	gt.Value(t, logging.From(context.Background())).Equal(logging.Default())
}

func TestSetDefault(t *testing.T) {
	original := logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)
	logging.SetDefault(logger)

	logging.Default().Info("hello")
	gt.String(t, buf.String()).Contains("hello")
}
