package model

import (
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
)

// SortField selects order attribute used for sorting.
type SortField string

const (
	SortByDate   SortField = "date"
	SortByPrice  SortField = "price"
	SortByStatus SortField = "status"
)

// ParseSortField validates raw sort field.
func ParseSortField(raw string) (SortField, error) {
	switch f := SortField(strings.TrimSpace(raw)); f {
	case SortByDate, SortByPrice, SortByStatus:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", domainErrors.ErrInvalidSortField, raw)
}

// SortOrder is sorting direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder validates raw sort direction.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch o := SortOrder(strings.TrimSpace(raw)); o {
	case SortAsc, SortDesc:
		return o, nil
	}
	return "", fmt.Errorf("%w: %q", domainErrors.ErrInvalidSortOrder, raw)
}

// Toggle flips the direction.
func (o SortOrder) Toggle() SortOrder {
	if o == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// StatusFilter is either a concrete status or StatusAll.
type StatusFilter string

// StatusAll disables status filtering.
const StatusAll StatusFilter = "all"

// ParseStatusFilter accepts "all" or any order status.
func ParseStatusFilter(raw string) (StatusFilter, error) {
	raw = strings.TrimSpace(raw)
	if raw == string(StatusAll) {
		return StatusAll, nil
	}
	status, err := ParseOrderStatus(raw)
	if err != nil {
		return "", err
	}
	return StatusFilter(status), nil
}

// Matches reports whether status passes the filter.
func (f StatusFilter) Matches(status OrderStatus) bool {
	return f == StatusAll || OrderStatus(f) == status
}

// OrderQuery holds search, filter and sort settings of the order list.
type OrderQuery struct {
	Search       string
	StatusFilter StatusFilter
	SortBy       SortField
	SortOrder    SortOrder
}

// DefaultOrderQuery returns the initial query state.
func DefaultOrderQuery() OrderQuery {
	return OrderQuery{
		StatusFilter: StatusAll,
		SortBy:       SortByDate,
		SortOrder:    SortDesc,
	}
}
