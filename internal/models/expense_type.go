package models

import "time"

// ExpenseType represents a category label applied to expenses
type ExpenseType struct {
	ID        int       `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}
