package model

import "github.com/secmon-lab/hl7risk/pkg/domain/types"

// Option is one selectable answer of a risk factor
type Option struct {
	Value       types.OptionValue `json:"value"`
	Label       string            `json:"label"`
	Description string            `json:"description"`
}

// RiskFactor is a weighted question contributing to the overall migration risk
type RiskFactor struct {
	ID       types.FactorID `json:"id"`
	Category string         `json:"category"`
	Question string         `json:"question"`
	Weight   int            `json:"weight"`
	Options  []Option       `json:"options"`
}

// MaxValue returns the highest option value of the factor
func (f *RiskFactor) MaxValue() types.OptionValue {
	var highest types.OptionValue
	for _, opt := range f.Options {
		if opt.Value > highest {
			highest = opt.Value
		}
	}
	return highest
}

// Option returns the option having the given value
func (f *RiskFactor) Option(value types.OptionValue) (Option, bool) {
	for _, opt := range f.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}
