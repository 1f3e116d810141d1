package safe_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hl7risk/pkg/utils/logging"
	"github.com/secmon-lab/hl7risk/pkg/utils/safe"
)

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("already closed") }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestClose(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.With(context.Background(), logging.New(&buf, slog.LevelInfo, logging.FormatJSON))

	safe.Close(ctx, nil)
	gt.Number(t, buf.Len()).Equal(0)

	safe.Close(ctx, failingCloser{})
	gt.String(t, buf.String()).Contains("already closed")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.With(context.Background(), logging.New(&buf, slog.LevelInfo, logging.FormatJSON))

	var out bytes.Buffer
	safe.Write(ctx, &out, []byte("ok"))
	gt.String(t, out.String()).Equal("ok")

	safe.Write(ctx, failingWriter{}, []byte("lost"))
	gt.String(t, buf.String()).Contains("pipe closed")
}
