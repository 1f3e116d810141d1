package model

import "github.com/secmon-lab/hl7risk/pkg/domain/types"

// Catalog is the static content loaded at startup. It is not modified
// afterwards.
type Catalog struct {
	Factors  []RiskFactor
	Register []RegisterItem
	Vendors  []VendorGuide
	Phases   []Phase
	Content  []ContentItem
}

// Factor returns the factor with the given ID
func (c *Catalog) Factor(id types.FactorID) (*RiskFactor, bool) {
	for i := range c.Factors {
		if c.Factors[i].ID == id {
			return &c.Factors[i], true
		}
	}
	return nil, false
}
