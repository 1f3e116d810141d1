package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound     = goerr.New("configuration file not found")
	ErrInvalidConfig      = goerr.New("invalid configuration")
	ErrNoFactors          = goerr.New("at least one risk factor is required")
	ErrDuplicateFactorID  = goerr.New("duplicate factor ID")
	ErrInvalidFactorID    = goerr.New("invalid factor ID format")
	ErrInvalidWeight      = goerr.New("factor weight must be a positive integer")
	ErrInvalidOptions     = goerr.New("factor options must have the values 1 to 4 exactly once")
	ErrMissingName        = goerr.New("name is required")
	ErrDuplicateRegister  = goerr.New("duplicate register item ID")
	ErrInvalidRegister    = goerr.New("invalid register item")
	ErrDuplicateVendorID  = goerr.New("duplicate vendor ID")
	ErrInvalidVendor      = goerr.New("invalid vendor guide")
	ErrDuplicatePhaseID   = goerr.New("duplicate phase ID")
	ErrInvalidPhase       = goerr.New("invalid implementation phase")
	ErrPhaseCycle         = goerr.New("phase dependencies form a cycle")
	ErrInvalidContent     = goerr.New("invalid content item")
	ErrInvalidAnswers     = goerr.New("invalid answers")
	ErrInvalidLoggerInput = goerr.New("invalid logger configuration")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	FactorIDKey   = "factor_id"
	RegisterIDKey = "register_id"
	VendorIDKey   = "vendor_id"
	PhaseIDKey    = "phase_id"
	ValueKey      = "value"
)
