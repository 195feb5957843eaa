package discovery

import (
	"strings"

	"eventhub/internal/domain"
)

func bucketName(category string) string {
	if strings.TrimSpace(category) == "" {
		return domain.SentinelCategory
	}
	return category
}

// AggregateCategories groups events by category and counts each group.
// Events without a category are counted under "Other". Summaries appear in the order their
// category is first seen in events, and only categories present in the data are reported.
func AggregateCategories(events []domain.Event) []domain.CategorySummary {
	index := make(map[string]int)
	out := make([]domain.CategorySummary, 0)
	for _, e := range events {
		name := bucketName(e.Category)
		if i, ok := index[name]; ok {
			out[i].Count++
			continue
		}
		tag := domain.ParseCategory(name)
		index[name] = len(out)
		out = append(out, domain.CategorySummary{
			Name:         name,
			Slug:         domain.Category(name).Slug(),
			Count:        1,
			CategoryMeta: tag.Meta(),
		})
	}
	return out
}

// ListCategoryNames returns "all" followed by the distinct non-empty categories of events,
// in first-seen order. It feeds category pickers, so it lists only labels an exact-match
// category filter can select.
func ListCategoryNames(events []domain.Event) []string {
	seen := make(map[string]struct{})
	out := []string{domain.AllCategories}
	for _, e := range events {
		if strings.TrimSpace(e.Category) == "" {
			continue
		}
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}
