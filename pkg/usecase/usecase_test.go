package usecase_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hl7risk/pkg/cli/config"
	"github.com/secmon-lab/hl7risk/pkg/domain/model"
	"github.com/secmon-lab/hl7risk/pkg/usecase"
	"github.com/secmon-lab/hl7risk/pkg/utils/logging"
)

func newDefaultUseCases(t *testing.T) *usecase.UseCases {
	t.Helper()
	cfg, err := config.DefaultCatalog()
	gt.NoError(t, err).Required()
	return usecase.New(cfg.ToDomain())
}

func TestNew_NilCatalog(t *testing.T) {
	uc := usecase.New(nil)
	gt.Value(t, uc.Catalog()).NotNil()
	gt.Array(t, uc.Assessment.Factors()).Length(0)
	gt.Array(t, uc.Vendor.Categories()).Length(0)
}

func TestNew_SharesCatalog(t *testing.T) {
	catalog := &model.Catalog{}
	uc := usecase.New(catalog)
	gt.Value(t, uc.Catalog()).Equal(catalog)
}

func TestNew_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug, logging.FormatJSON)

	cfg, err := config.DefaultCatalog()
	gt.NoError(t, err).Required()
	uc := usecase.New(cfg.ToDomain(), usecase.WithLogger(logger))

	session := uc.Assessment.NewSession(context.Background())
	gt.String(t, buf.String()).Contains("assessment session started")
	gt.String(t, buf.String()).Contains(string(session.ID()))
}
