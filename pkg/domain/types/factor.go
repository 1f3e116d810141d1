package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// FactorID represents a unique identifier for a risk factor
type FactorID string

var factorIDPattern = regexp.MustCompile(`^[a-z0-9]+([_-][a-z0-9]+)*$`)

// Validate checks if the FactorID is valid
func (f FactorID) Validate() error {
	if f == "" {
		return goerr.New("factor ID cannot be empty")
	}
	if !factorIDPattern.MatchString(string(f)) {
		return goerr.New("factor ID must be lowercase alphanumeric joined by underscores or hyphens", goerr.V("id", f))
	}
	return nil
}

// String returns the string representation of FactorID
func (f FactorID) String() string {
	return string(f)
}

// OptionValue is the value of the option chosen for a risk factor
type OptionValue int

const (
	MinOptionValue OptionValue = 1
	MaxOptionValue OptionValue = 4
)

// Validate checks that the value is within [MinOptionValue, MaxOptionValue]
func (v OptionValue) Validate() error {
	if v < MinOptionValue || v > MaxOptionValue {
		return goerr.Wrap(ErrInvalidInput, "option value out of range",
			goerr.V("value", int(v)),
			goerr.V("min", int(MinOptionValue)),
			goerr.V("max", int(MaxOptionValue)))
	}
	return nil
}

// Int returns the value as int
func (v OptionValue) Int() int {
	return int(v)
}
