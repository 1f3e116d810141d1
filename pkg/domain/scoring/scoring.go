// Package scoring turns a set of risk factor responses into a percentage, a
// risk tier and the mitigation actions recommended for that tier. All
// functions are pure.
package scoring

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hl7risk/pkg/domain/model"
	"github.com/secmon-lab/hl7risk/pkg/domain/types"
)

// ComputeScore returns the weighted score of responses as a percentage of the
// maximum possible score. Every factor counts toward the maximum whether it has
// a response or not, so unanswered factors lower the score. Responses for IDs
// not in factors are ignored.
func ComputeScore(responses model.ResponseSet, factors []model.RiskFactor) (float64, error) {
	var total, maximum int

	for _, factor := range factors {
		if value, ok := responses.Get(factor.ID); ok {
			if err := value.Validate(); err != nil {
				return 0, goerr.Wrap(err, "invalid response",
					goerr.V(model.FactorIDKey, factor.ID),
					goerr.V(model.OptionValueKey, value.Int()))
			}
			total += value.Int() * factor.Weight
		}
		maximum += types.MaxOptionValue.Int() * factor.Weight
	}

	if maximum == 0 {
		return 0, nil
	}

	return float64(total) / float64(maximum) * 100, nil
}

// Tier upper bounds, inclusive
const (
	lowUpperBound    = 25.0
	mediumUpperBound = 50.0
	highUpperBound   = 75.0
)

// UpperBound returns the inclusive upper percentage of tier. Unknown tiers
// return 0.
func UpperBound(tier types.Tier) float64 {
	switch tier {
	case types.TierLow:
		return lowUpperBound
	case types.TierMedium:
		return mediumUpperBound
	case types.TierHigh:
		return highUpperBound
	case types.TierCritical:
		return 100
	default:
		return 0
	}
}

var classifications = map[types.Tier]model.Classification{
	types.TierLow: {
		Tier:        types.TierLow,
		Label:       "Low",
		Color:       "green",
		Description: "Low risk migration with standard precautions",
	},
	types.TierMedium: {
		Tier:        types.TierMedium,
		Label:       "Medium",
		Color:       "yellow",
		Description: "Moderate risk requiring careful planning",
	},
	types.TierHigh: {
		Tier:        types.TierHigh,
		Label:       "High",
		Color:       "orange",
		Description: "High risk requiring extensive mitigation strategies",
	},
	types.TierCritical: {
		Tier:        types.TierCritical,
		Label:       "Critical",
		Color:       "red",
		Description: "Critical risk requiring comprehensive risk management",
	},
}

// ClassifyRisk maps a percentage to its tier. A value on a boundary (25, 50,
// 75) belongs to the lower tier.
func ClassifyRisk(percentage float64) model.Classification {
	switch {
	case percentage <= lowUpperBound:
		return classifications[types.TierLow]
	case percentage <= mediumUpperBound:
		return classifications[types.TierMedium]
	case percentage <= highUpperBound:
		return classifications[types.TierHigh]
	default:
		return classifications[types.TierCritical]
	}
}

// Classification returns the fixed classification of tier
func Classification(tier types.Tier) (model.Classification, bool) {
	c, ok := classifications[tier]
	return c, ok
}

var (
	baseRecommendations = []string{
		"Conduct thorough testing in isolated environment",
		"Develop comprehensive rollback procedures",
		"Establish clear communication channels",
		"Monitor system performance closely",
	}

	mediumRecommendations = []string{
		"Consider phased migration approach",
		"Engage additional technical expertise",
		"Extend testing timeline",
	}

	highRecommendations = []string{
		"Implement parallel processing during transition",
		"Engage vendor professional services",
		"Consider external consulting support",
		"Develop detailed contingency plans",
		"Conduct pilot implementation first",
	}

	criticalRecommendations = []string{
		"Mandatory parallel processing with full rollback capability",
		"Engage dedicated migration team",
		"Require vendor on-site support",
		"Implement 24/7 monitoring during transition",
		"Consider delaying migration until risks are mitigated",
		"Develop comprehensive disaster recovery plan",
	}
)

// DeriveRecommendations returns the ordered mitigation actions for tier. Each
// tier includes everything recommended for the tiers below it. The returned
// slice is owned by the caller.
func DeriveRecommendations(tier types.Tier) []string {
	var extra [][]string
	switch tier {
	case types.TierMedium:
		extra = [][]string{mediumRecommendations}
	case types.TierHigh:
		extra = [][]string{mediumRecommendations, highRecommendations}
	case types.TierCritical:
		extra = [][]string{mediumRecommendations, highRecommendations, criticalRecommendations}
	}

	recommendations := make([]string, 0, len(baseRecommendations)+len(mediumRecommendations)+len(highRecommendations)+len(criticalRecommendations))
	recommendations = append(recommendations, baseRecommendations...)
	for _, list := range extra {
		recommendations = append(recommendations, list...)
	}
	return recommendations
}

// Assess runs the whole pipeline over responses
func Assess(responses model.ResponseSet, factors []model.RiskFactor) (*model.Result, error) {
	percentage, err := ComputeScore(responses, factors)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compute score")
	}

	classification := ClassifyRisk(percentage)
	return &model.Result{
		Percentage:      percentage,
		Classification:  classification,
		Recommendations: DeriveRecommendations(classification.Tier),
	}, nil
}
