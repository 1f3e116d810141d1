package types

import "github.com/m-mizutani/goerr/v2"

// ErrInvalidInput is returned when a value supplied from outside the engine
// is outside of its domain, e.g. an option value other than 1-4.
var ErrInvalidInput = goerr.New("invalid input")
