package usecase

import (
	"context"
	"strings"

	"github.com/secmon-lab/hl7risk/pkg/domain/model"
	"github.com/secmon-lab/hl7risk/pkg/domain/types"
)

// VendorFilter narrows the vendor guides. Empty fields and "All" match
// everything.
type VendorFilter struct {
	Query    string
	Category string
	Support  string
}

type VendorUseCase struct {
	vendors []model.VendorGuide
}

func NewVendorUseCase(vendors []model.VendorGuide) *VendorUseCase {
	return &VendorUseCase{vendors: vendors}
}

// Search returns guides whose vendor name or description contains the query,
// ignoring case, in catalog order
func (uc *VendorUseCase) Search(ctx context.Context, filter VendorFilter) []model.VendorGuide {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	matched := make([]model.VendorGuide, 0, len(uc.vendors))
	for _, v := range uc.vendors {
		if query != "" &&
			!strings.Contains(strings.ToLower(v.Vendor), query) &&
			!strings.Contains(strings.ToLower(v.Description), query) {
			continue
		}
		if filter.Category != "" && filter.Category != filterAll && !strings.EqualFold(v.Category.String(), filter.Category) {
			continue
		}
		if filter.Support != "" && filter.Support != filterAll && !strings.EqualFold(v.Support.Level.String(), filter.Support) {
			continue
		}
		matched = append(matched, v)
	}
	return matched
}

// Get returns the guide with the given ID
func (uc *VendorUseCase) Get(ctx context.Context, id string) (*model.VendorGuide, bool) {
	for i := range uc.vendors {
		if uc.vendors[i].ID == id {
			return &uc.vendors[i], true
		}
	}
	return nil, false
}

// Categories returns the distinct vendor categories in first-seen order
func (uc *VendorUseCase) Categories() []types.VendorCategory {
	var categories []types.VendorCategory
	seen := make(map[types.VendorCategory]bool)
	for _, v := range uc.vendors {
		if !seen[v.Category] {
			seen[v.Category] = true
			categories = append(categories, v.Category)
		}
	}
	return categories
}

// SupportLevels returns the distinct support levels in first-seen order
func (uc *VendorUseCase) SupportLevels() []types.SupportLevel {
	var levels []types.SupportLevel
	seen := make(map[types.SupportLevel]bool)
	for _, v := range uc.vendors {
		if !seen[v.Support.Level] {
			seen[v.Support.Level] = true
			levels = append(levels, v.Support.Level)
		}
	}
	return levels
}
