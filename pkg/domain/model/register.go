package model

import "github.com/secmon-lab/hl7risk/pkg/domain/types"

// RegisterItem is a project level migration risk tracked in the risk register
type RegisterItem struct {
	ID              string               `json:"id"`
	Category        string               `json:"category"`
	Description     string               `json:"description"`
	Impact          types.Level          `json:"impact"`
	Likelihood      types.Level          `json:"likelihood"`
	ImpactScore     int                  `json:"impact_score"`
	LikelihoodScore int                  `json:"likelihood_score"`
	Mitigation      string               `json:"mitigation"`
	Owner           string               `json:"owner"`
	Status          types.RegisterStatus `json:"status"`
}

// RiskScore is impact times likelihood
func (r *RegisterItem) RiskScore() int {
	return r.ImpactScore * r.LikelihoodScore
}
