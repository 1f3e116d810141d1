package types

import "github.com/m-mizutani/goerr/v2"

// Tier is the discrete risk category derived from a score percentage
type Tier string

const (
	TierLow      Tier = "Low"
	TierMedium   Tier = "Medium"
	TierHigh     Tier = "High"
	TierCritical Tier = "Critical"
)

// AllTiers returns all tiers ordered from lowest to highest
func AllTiers() []Tier {
	return []Tier{
		TierLow,
		TierMedium,
		TierHigh,
		TierCritical,
	}
}

// IsValid checks if the tier is valid
func (t Tier) IsValid() bool {
	switch t {
	case TierLow,
		TierMedium,
		TierHigh,
		TierCritical:
		return true
	default:
		return false
	}
}

// Rank returns the position of the tier in AllTiers, or -1 if invalid
func (t Tier) Rank() int {
	for i, tier := range AllTiers() {
		if tier == t {
			return i
		}
	}
	return -1
}

// String returns the string representation of the tier
func (t Tier) String() string {
	return string(t)
}

// ParseTier parses a string into a Tier
func ParseTier(s string) (Tier, error) {
	tier := Tier(s)
	if !tier.IsValid() {
		return "", goerr.Wrap(ErrInvalidInput, "invalid tier", goerr.V("tier", s))
	}
	return tier, nil
}
