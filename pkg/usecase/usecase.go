package usecase

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/hl7risk/pkg/domain/model"
	"github.com/secmon-lab/hl7risk/pkg/utils/logging"
)

// filterAll is the filter value that matches every entry
const filterAll = "All"

type UseCases struct {
	catalog    *model.Catalog
	logger     *slog.Logger
	Assessment *AssessmentUseCase
	Register   *RegisterUseCase
	Vendor     *VendorUseCase
	Phase      *PhaseUseCase
	Search     *SearchUseCase
}

type Option func(*UseCases)

// WithLogger sets a logger that takes precedence over the one in context
func WithLogger(logger *slog.Logger) Option {
	return func(uc *UseCases) {
		uc.logger = logger
	}
}

func New(catalog *model.Catalog, opts ...Option) *UseCases {
	if catalog == nil {
		catalog = &model.Catalog{}
	}

	uc := &UseCases{
		catalog: catalog,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Assessment = NewAssessmentUseCase(catalog, uc.logger)
	uc.Register = NewRegisterUseCase(catalog.Register)
	uc.Vendor = NewVendorUseCase(catalog.Vendors)
	uc.Phase = NewPhaseUseCase(catalog.Phases)
	uc.Search = NewSearchUseCase(catalog.Content)

	return uc
}

// Catalog returns the catalog the use cases were built from
func (uc *UseCases) Catalog() *model.Catalog {
	return uc.catalog
}

func loggerFrom(ctx context.Context, override *slog.Logger) *slog.Logger {
	if override != nil {
		return override
	}
	return logging.From(ctx)
}
