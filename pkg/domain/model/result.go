package model

import (
	"math"

	"github.com/secmon-lab/hl7risk/pkg/domain/types"
)

// Classification is the tier assigned to a score percentage
type Classification struct {
	Tier        types.Tier `json:"tier"`
	Label       string     `json:"label"`
	Color       string     `json:"color"`
	Description string     `json:"description"`
}

// Result is the outcome of the calculate action
type Result struct {
	Percentage      float64        `json:"percentage"`
	Classification  Classification `json:"classification"`
	Recommendations []string       `json:"recommendations"`
}

// RoundedPercentage returns the percentage as displayed to users
func (r *Result) RoundedPercentage() int {
	return int(math.Round(r.Percentage))
}
