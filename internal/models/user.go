package models

import "time"

// User represents a registered user in the system
type User struct {
	ID         int       `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	CurrencyID int       `json:"currency_id"`
	Currency   *Currency `json:"currency,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FullName returns the display name used in expense responses
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
