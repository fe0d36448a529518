package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// Derive produces the filtered and sorted projection of orders for query.
// The input slice is never modified.
func Derive(orders []model.Order, query model.OrderQuery) []model.Order {
	needle := strings.ToLower(query.Search)

	result := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if needle != "" && !matchesSearch(o, needle) {
			continue
		}
		if query.StatusFilter != "" && !query.StatusFilter.Matches(o.Status) {
			continue
		}
		result = append(result, o)
	}

	compare := comparator(query.SortBy)
	if query.SortOrder == model.SortDesc {
		asc := compare
		compare = func(a, b model.Order) int { return -asc(a, b) }
	}
	slices.SortStableFunc(result, compare)

	return result
}

func matchesSearch(o model.Order, needle string) bool {
	for _, field := range [...]string{o.ID, o.ClientName, o.CarModel, o.CarNumber} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func comparator(field model.SortField) func(a, b model.Order) int {
	switch field {
	case model.SortByPrice:
		return func(a, b model.Order) int { return cmp.Compare(a.TotalPrice, b.TotalPrice) }
	case model.SortByStatus:
		return func(a, b model.Order) int { return strings.Compare(string(a.Status), string(b.Status)) }
	default:
		return func(a, b model.Order) int { return a.ScheduledDate.Compare(b.ScheduledDate) }
	}
}
