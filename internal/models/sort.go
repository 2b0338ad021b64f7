package models

import "strings"

// SortBy selects the expense list sort key.
type SortBy string

// SortOrder selects the expense list sort direction.
type SortOrder string

const (
	SortByExpenseDate SortBy = "expenseDate"
	SortByAmount      SortBy = "amount"

	SortOrderAscending  SortOrder = "ascending"
	SortOrderDescending SortOrder = "descending"
)

// ParseSortBy maps a query-string value to a sort key. The second return
// reports whether the value was recognized; callers fall back to
// date-ascending when it was not.
func ParseSortBy(s string) (SortBy, bool) {
	switch strings.ToLower(s) {
	case "", "date", "expensedate":
		return SortByExpenseDate, true
	case "amount":
		return SortByAmount, true
	default:
		return SortByExpenseDate, false
	}
}

// ParseSortOrder maps a query-string value to a sort direction, defaulting
// to ascending.
func ParseSortOrder(s string) SortOrder {
	switch strings.ToLower(s) {
	case "desc", "descending", "1":
		return SortOrderDescending
	default:
		return SortOrderAscending
	}
}
