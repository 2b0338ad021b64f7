package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortBy(t *testing.T) {
	tests := []struct {
		in         string
		want       SortBy
		recognized bool
	}{
		{"", SortByExpenseDate, true},
		{"date", SortByExpenseDate, true},
		{"expenseDate", SortByExpenseDate, true},
		{"amount", SortByAmount, true},
		{"AMOUNT", SortByAmount, true},
		{"color", SortByExpenseDate, false},
	}
	for _, tt := range tests {
		got, recognized := ParseSortBy(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.recognized, recognized, "input %q", tt.in)
	}
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortOrderAscending, ParseSortOrder(""))
	assert.Equal(t, SortOrderAscending, ParseSortOrder("asc"))
	assert.Equal(t, SortOrderAscending, ParseSortOrder("ascending"))
	assert.Equal(t, SortOrderDescending, ParseSortOrder("desc"))
	assert.Equal(t, SortOrderDescending, ParseSortOrder("Descending"))
	assert.Equal(t, SortOrderDescending, ParseSortOrder("1"))
}

func TestUserFullName(t *testing.T) {
	u := &User{FirstName: "Anthony", LastName: "Stark"}
	assert.Equal(t, "Anthony Stark", u.FullName())
}
