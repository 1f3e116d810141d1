package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hl7risk/pkg/domain/model"
	"github.com/secmon-lab/hl7risk/pkg/domain/types"
)

// RegisterFilter narrows the risk register. Empty fields and "All" match
// everything.
type RegisterFilter struct {
	Category string
	Status   string
	MinScore int
}

// RegisterSummary counts register items
type RegisterSummary struct {
	Total        int                          `json:"total"`
	ByImpact     map[types.Level]int          `json:"by_impact"`
	ByStatus     map[types.RegisterStatus]int `json:"by_status"`
	HighestScore int                          `json:"highest_score"`
}

type RegisterUseCase struct {
	items []model.RegisterItem
}

func NewRegisterUseCase(items []model.RegisterItem) *RegisterUseCase {
	return &RegisterUseCase{items: items}
}

// List returns matching items ordered by risk score, highest first, then ID
func (uc *RegisterUseCase) List(ctx context.Context, filter RegisterFilter) ([]model.RegisterItem, error) {
	var status types.RegisterStatus
	if filter.Status != "" && filter.Status != filterAll {
		s, err := types.ParseRegisterStatus(filter.Status)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid status filter")
		}
		status = s
	}
	if filter.MinScore < 0 {
		return nil, goerr.Wrap(types.ErrInvalidInput, "minimum score must not be negative", goerr.V("min_score", filter.MinScore))
	}

	matched := make([]model.RegisterItem, 0, len(uc.items))
	for _, item := range uc.items {
		if filter.Category != "" && filter.Category != filterAll && !strings.EqualFold(item.Category, filter.Category) {
			continue
		}
		if status != "" && item.Status != status {
			continue
		}
		if item.RiskScore() < filter.MinScore {
			continue
		}
		matched = append(matched, item)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		si, sj := matched[i].RiskScore(), matched[j].RiskScore()
		if si != sj {
			return si > sj
		}
		return matched[i].ID < matched[j].ID
	})

	return matched, nil
}

// Categories returns the distinct categories in first-seen order
func (uc *RegisterUseCase) Categories() []string {
	var categories []string
	seen := make(map[string]bool)
	for _, item := range uc.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}

// Summary counts the whole register by impact and status
func (uc *RegisterUseCase) Summary(ctx context.Context) *RegisterSummary {
	summary := &RegisterSummary{
		Total:    len(uc.items),
		ByImpact: make(map[types.Level]int),
		ByStatus: make(map[types.RegisterStatus]int),
	}

	for _, item := range uc.items {
		summary.ByImpact[item.Impact]++
		summary.ByStatus[item.Status]++
		if score := item.RiskScore(); score > summary.HighestScore {
			summary.HighestScore = score
		}
	}

	return summary
}
