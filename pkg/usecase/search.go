package usecase

import (
	"context"
	"strings"

	"github.com/secmon-lab/hl7risk/pkg/domain/model"
)

// SearchFilter narrows the reference content index. Empty fields and "All"
// match everything.
type SearchFilter struct {
	Query    string
	Category string
}

type SearchUseCase struct {
	items []model.ContentItem
}

func NewSearchUseCase(items []model.ContentItem) *SearchUseCase {
	return &SearchUseCase{items: items}
}

// Search returns items whose title, description or any keyword contains the
// query, ignoring case, in catalog order
func (uc *SearchUseCase) Search(ctx context.Context, filter SearchFilter) []model.ContentItem {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	matched := make([]model.ContentItem, 0, len(uc.items))
	for _, item := range uc.items {
		if query != "" && !matchesContent(item, query) {
			continue
		}
		if filter.Category != "" && filter.Category != filterAll && !strings.EqualFold(item.Category, filter.Category) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

func matchesContent(item model.ContentItem, query string) bool {
	if strings.Contains(strings.ToLower(item.Title), query) ||
		strings.Contains(strings.ToLower(item.Description), query) {
		return true
	}
	for _, kw := range item.Keywords {
		if strings.Contains(strings.ToLower(kw), query) {
			return true
		}
	}
	return false
}

// Categories returns the distinct content categories in first-seen order
func (uc *SearchUseCase) Categories() []string {
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
