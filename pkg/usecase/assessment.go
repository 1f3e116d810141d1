package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hl7risk/pkg/domain/model"
	"github.com/secmon-lab/hl7risk/pkg/domain/scoring"
	"github.com/secmon-lab/hl7risk/pkg/domain/types"
)

// AssessmentUseCase drives a single user's questionnaire session
type AssessmentUseCase struct {
	catalog *model.Catalog
	logger  *slog.Logger
}

func NewAssessmentUseCase(catalog *model.Catalog, logger *slog.Logger) *AssessmentUseCase {
	return &AssessmentUseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Factors returns the configured risk factors in questionnaire order
func (uc *AssessmentUseCase) Factors() []model.RiskFactor {
	return uc.catalog.Factors
}

// NewSession starts an empty assessment over the configured factors
func (uc *AssessmentUseCase) NewSession(ctx context.Context) *model.Session {
	session := model.NewSession(uc.catalog.Factors)
	loggerFrom(ctx, uc.logger).Debug("assessment session started",
		"session_id", session.ID(),
		"factors", len(uc.catalog.Factors))
	return session
}

// Answer records value for factorID in session
func (uc *AssessmentUseCase) Answer(ctx context.Context, session *model.Session, factorID types.FactorID, value types.OptionValue) error {
	if session == nil {
		return goerr.Wrap(ErrNilSession, "cannot answer")
	}

	if err := session.Answer(factorID, value); err != nil {
		return goerr.Wrap(err, "failed to record answer", goerr.V(SessionIDKey, session.ID()))
	}

	answered, total := session.Progress()
	loggerFrom(ctx, uc.logger).Debug("answer recorded",
		"session_id", session.ID(),
		"factor_id", factorID,
		"value", value,
		"answered", answered,
		"total", total,
		"state", session.State())
	return nil
}

// ApplyResponses records every response in questionnaire order. The whole set
// is checked first, so a rejected response leaves the session unchanged.
func (uc *AssessmentUseCase) ApplyResponses(ctx context.Context, session *model.Session, responses model.ResponseSet) error {
	if session == nil {
		return goerr.Wrap(ErrNilSession, "cannot apply responses")
	}

	for id, value := range responses {
		factor, ok := uc.catalog.Factor(id)
		if !ok {
			return goerr.Wrap(ErrUnknownFactor, "answer for unknown factor", goerr.V(model.FactorIDKey, id))
		}
		if err := value.Validate(); err != nil {
			return goerr.Wrap(err, "invalid answer", goerr.V(model.FactorIDKey, id))
		}
		if _, ok := factor.Option(value); !ok {
			return goerr.Wrap(types.ErrInvalidInput, "factor has no such option",
				goerr.V(model.FactorIDKey, id),
				goerr.V(model.OptionValueKey, value.Int()))
		}
	}

	for _, f := range uc.catalog.Factors {
		if value, ok := responses.Get(f.ID); ok {
			if err := uc.Answer(ctx, session, f.ID, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Calculate scores a complete session and moves it to the results state
func (uc *AssessmentUseCase) Calculate(ctx context.Context, session *model.Session) (*model.Result, error) {
	if session == nil {
		return nil, goerr.Wrap(ErrNilSession, "cannot calculate")
	}

	if !session.IsComplete() {
		return nil, goerr.Wrap(ErrIncompleteResponses, "assessment is incomplete",
			goerr.V(SessionIDKey, session.ID()),
			goerr.V(MissingKey, session.Missing()))
	}

	result, err := scoring.Assess(session.Responses(), session.Factors())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to score assessment", goerr.V(SessionIDKey, session.ID()))
	}

	if err := session.MarkCalculated(result); err != nil {
		return nil, goerr.Wrap(err, "failed to store result", goerr.V(SessionIDKey, session.ID()))
	}

	loggerFrom(ctx, uc.logger).Info("assessment calculated",
		"session_id", session.ID(),
		"percentage", result.RoundedPercentage(),
		"tier", result.Classification.Tier,
		"recommendations", len(result.Recommendations))
	return result, nil
}
