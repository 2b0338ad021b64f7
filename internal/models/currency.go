package models

import "time"

// Currency represents a currency referenced by users and expenses
type Currency struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
