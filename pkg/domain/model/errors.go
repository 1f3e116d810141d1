package model

import "github.com/m-mizutani/goerr/v2"

// Assessment errors
var (
	ErrUnknownFactor     = goerr.New("unknown risk factor")
	ErrInvalidTransition = goerr.New("invalid session state transition")
)

// Context keys for error values
const (
	FactorIDKey    = "factor_id"
	OptionValueKey = "option_value"
)
