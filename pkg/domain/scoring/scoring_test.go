package scoring_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hl7risk/pkg/domain/model"
	"github.com/secmon-lab/hl7risk/pkg/domain/scoring"
	"github.com/secmon-lab/hl7risk/pkg/domain/types"
)

func newFactor(id types.FactorID, weight int) model.RiskFactor {
	return model.RiskFactor{
		ID:     id,
		Weight: weight,
		Options: []model.Option{
			{Value: 1, Label: "one"},
			{Value: 2, Label: "two"},
			{Value: 3, Label: "three"},
			{Value: 4, Label: "four"},
		},
	}
}

// migrationFactors mirrors the weights of the built-in questionnaire
func migrationFactors() []model.RiskFactor {
	return []model.RiskFactor{
		newFactor("system_complexity", 3),
		newFactor("message_volume", 2),
		newFactor("vendor_support", 3),
		newFactor("team_expertise", 3),
		newFactor("testing_environment", 2),
		newFactor("downtime_tolerance", 4),
		newFactor("regulatory_requirements", 3),
		newFactor("timeline_pressure", 2),
	}
}

func uniformResponses(factors []model.RiskFactor, value types.OptionValue) model.ResponseSet {
	responses := make(model.ResponseSet)
	for _, f := range factors {
		responses.Set(f.ID, value)
	}
	return responses
}

func TestComputeScore_Uniform(t *testing.T) {
	factors := migrationFactors()

	tests := []struct {
		name  string
		value types.OptionValue
		want  float64
	}{
		{"all minimum", 1, 25.0},
		{"all two", 2, 50.0},
		{"all three", 3, 75.0},
		{"all maximum", 4, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scoring.ComputeScore(uniformResponses(factors, tt.value), factors)
			gt.NoError(t, err).Required()
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestComputeScore_Weighted(t *testing.T) {
	factors := []model.RiskFactor{
		newFactor("a", 3),
		newFactor("b", 1),
	}
	responses := model.ResponseSet{"a": 4, "b": 2}

	// (4*3 + 2*1) / (4*3 + 4*1) = 14/16
	got, err := scoring.ComputeScore(responses, factors)
	gt.NoError(t, err).Required()
	gt.Value(t, got).Equal(87.5)
}

func TestComputeScore_Incomplete(t *testing.T) {
	factors := migrationFactors()

	t.Run("no responses yields zero", func(t *testing.T) {
		got, err := scoring.ComputeScore(model.ResponseSet{}, factors)
		gt.NoError(t, err).Required()
		gt.Value(t, got).Equal(0.0)
	})

	t.Run("unanswered factors still count toward maximum", func(t *testing.T) {
		// downtime_tolerance weight 4, answered 4 => 16 / 88
		responses := model.ResponseSet{"downtime_tolerance": 4}
		total, maximum := 16, 88
		got, err := scoring.ComputeScore(responses, factors)
		gt.NoError(t, err).Required()
		gt.Value(t, got).Equal(float64(total) / float64(maximum) * 100)
	})
}

func TestComputeScore_UnknownFactorIgnored(t *testing.T) {
	factors := migrationFactors()
	responses := uniformResponses(factors, 1)
	responses.Set("not_a_factor", 4)

	got, err := scoring.ComputeScore(responses, factors)
	gt.NoError(t, err).Required()
	gt.Value(t, got).Equal(25.0)
}

func TestComputeScore_InvalidValue(t *testing.T) {
	factors := migrationFactors()

	for _, v := range []types.OptionValue{0, 5, -1} {
		responses := uniformResponses(factors, 2)
		responses.Set("message_volume", v)

		_, err := scoring.ComputeScore(responses, factors)
		gt.Error(t, err).Is(types.ErrInvalidInput)
	}
}

func TestComputeScore_InvalidValueOnUnknownFactorIgnored(t *testing.T) {
	factors := migrationFactors()
	responses := uniformResponses(factors, 2)
	responses.Set("extra", 99)

	got, err := scoring.ComputeScore(responses, factors)
	gt.NoError(t, err).Required()
	gt.Value(t, got).Equal(50.0)
}

func TestComputeScore_NoFactors(t *testing.T) {
	got, err := scoring.ComputeScore(model.ResponseSet{"a": 2}, nil)
	gt.NoError(t, err).Required()
	gt.Value(t, got).Equal(0.0)
}

func TestComputeScore_Idempotent(t *testing.T) {
	factors := migrationFactors()
	responses := model.ResponseSet{
		"system_complexity":       3,
		"message_volume":          1,
		"vendor_support":          4,
		"team_expertise":          2,
		"testing_environment":     2,
		"downtime_tolerance":      3,
		"regulatory_requirements": 1,
		"timeline_pressure":       4,
	}

	first, err := scoring.ComputeScore(responses, factors)
	gt.NoError(t, err).Required()
	second, err := scoring.ComputeScore(responses, factors)
	gt.NoError(t, err).Required()
	gt.Value(t, second).Equal(first)
	gt.Number(t, responses.Len()).Equal(8)
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		want       types.Tier
	}{
		{"zero", 0, types.TierLow},
		{"low boundary", 25.0, types.TierLow},
		{"just above low", 25.0001, types.TierMedium},
		{"medium boundary", 50.0, types.TierMedium},
		{"just above medium", 50.0001, types.TierHigh},
		{"high boundary", 75.0, types.TierHigh},
		{"just above high", 75.0001, types.TierCritical},
		{"maximum", 100, types.TierCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoring.ClassifyRisk(tt.percentage)
			gt.Value(t, got.Tier).Equal(tt.want)
			gt.String(t, got.Label).Equal(tt.want.String())
			gt.String(t, got.Description).NotEqual("")
			gt.String(t, got.Color).NotEqual("")
		})
	}
}

func TestClassifyRisk_Total(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		p := float64(i) / 10
		c := scoring.ClassifyRisk(p)
		gt.B(t, c.Tier.IsValid()).True()
	}
}

func TestClassifyRisk_Descriptions(t *testing.T) {
	gt.String(t, scoring.ClassifyRisk(10).Description).Equal("Low risk migration with standard precautions")
	gt.String(t, scoring.ClassifyRisk(40).Description).Equal("Moderate risk requiring careful planning")
	gt.String(t, scoring.ClassifyRisk(60).Description).Equal("High risk requiring extensive mitigation strategies")
	gt.String(t, scoring.ClassifyRisk(90).Description).Equal("Critical risk requiring comprehensive risk management")
}

func TestDeriveRecommendations_Counts(t *testing.T) {
	gt.Array(t, scoring.DeriveRecommendations(types.TierLow)).Length(4)
	gt.Array(t, scoring.DeriveRecommendations(types.TierMedium)).Length(7)
	gt.Array(t, scoring.DeriveRecommendations(types.TierHigh)).Length(12)
	gt.Array(t, scoring.DeriveRecommendations(types.TierCritical)).Length(18)
}

func TestDeriveRecommendations_Monotonic(t *testing.T) {
	tiers := types.AllTiers()
	for i := 1; i < len(tiers); i++ {
		lower := scoring.DeriveRecommendations(tiers[i-1])
		higher := scoring.DeriveRecommendations(tiers[i])

		gt.Number(t, len(higher)).Greater(len(lower))
		for _, rec := range lower {
			gt.Array(t, higher).Has(rec)
		}
	}
}

func TestDeriveRecommendations_CriticalLanguage(t *testing.T) {
	recs := scoring.DeriveRecommendations(types.TierCritical)
	gt.Array(t, recs).Has("Mandatory parallel processing with full rollback capability")
	gt.Array(t, recs).Has("Implement 24/7 monitoring during transition")
	gt.Array(t, recs).Has("Engage dedicated migration team")
}

func TestDeriveRecommendations_ReturnsCopy(t *testing.T) {
	first := scoring.DeriveRecommendations(types.TierLow)
	first[0] = "mutated"

	second := scoring.DeriveRecommendations(types.TierLow)
	gt.String(t, second[0]).Equal("Conduct thorough testing in isolated environment")
}

func TestDeriveRecommendations_UnknownTier(t *testing.T) {
	gt.Value(t, scoring.DeriveRecommendations(types.Tier("Unknown"))).
		Equal(scoring.DeriveRecommendations(types.TierLow))
}

func TestAssess_EndToEnd(t *testing.T) {
	factors := migrationFactors()

	t.Run("all two lands exactly on the medium boundary", func(t *testing.T) {
		result, err := scoring.Assess(uniformResponses(factors, 2), factors)
		gt.NoError(t, err).Required()
		gt.Value(t, result.Percentage).Equal(50.0)
		gt.Value(t, result.Classification.Tier).Equal(types.TierMedium)
		gt.Array(t, result.Recommendations).Length(7)
		gt.Number(t, result.RoundedPercentage()).Equal(50)
	})

	t.Run("all minimum is low", func(t *testing.T) {
		result, err := scoring.Assess(uniformResponses(factors, 1), factors)
		gt.NoError(t, err).Required()
		gt.Value(t, result.Classification.Tier).Equal(types.TierLow)
		gt.Array(t, result.Recommendations).Length(4)
	})

	t.Run("all maximum is critical", func(t *testing.T) {
		result, err := scoring.Assess(uniformResponses(factors, 4), factors)
		gt.NoError(t, err).Required()
		gt.Value(t, result.Percentage).Equal(100.0)
		gt.Value(t, result.Classification.Tier).Equal(types.TierCritical)
	})

	t.Run("invalid value is rejected", func(t *testing.T) {
		responses := uniformResponses(factors, 2)
		responses.Set("timeline_pressure", 7)

		_, err := scoring.Assess(responses, factors)
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, types.ErrInvalidInput)).True()
	})
}

func TestClassification(t *testing.T) {
	for _, tier := range types.AllTiers() {
		c, ok := scoring.Classification(tier)
		gt.Bool(t, ok).True()
		gt.Value(t, c.Tier).Equal(tier)
	}

	_, ok := scoring.Classification(types.Tier("nope"))
	gt.Bool(t, ok).False()
}

func TestUpperBound(t *testing.T) {
	for _, tier := range types.AllTiers() {
		bound := scoring.UpperBound(tier)
		gt.Value(t, scoring.ClassifyRisk(bound).Tier).Equal(tier)
	}
	gt.Value(t, scoring.UpperBound(types.Tier("nope"))).Equal(0.0)
}
