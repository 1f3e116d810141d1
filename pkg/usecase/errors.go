package usecase

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hl7risk/pkg/domain/model"
)

// Sentinel errors for use case layer
var (
	ErrIncompleteResponses = goerr.New("not every risk factor has been answered")
	ErrNilSession          = goerr.New("session is required")
	ErrInvalidPhasePlan    = goerr.New("implementation phases cannot be scheduled")

	// ErrUnknownFactor is returned when an answer names a factor that is not
	// in the catalog
	ErrUnknownFactor = model.ErrUnknownFactor
)

// Context keys for error values
const (
	SessionIDKey = "session_id"
	MissingKey   = "missing"
	PhaseIDKey   = "phase_id"
)
