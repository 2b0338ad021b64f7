package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single recorded monetary outlay by a user
type Expense struct {
	ID            int64           `json:"id"`
	ExpenseDate   time.Time       `json:"expense_date"`
	Comment       string          `json:"comment"`
	Amount        decimal.Decimal `json:"amount"`
	UserID        int             `json:"user_id"`
	User          *User           `json:"user,omitempty"`
	CurrencyID    int             `json:"currency_id"`
	Currency      *Currency       `json:"currency,omitempty"`
	ExpenseTypeID int             `json:"expense_type_id"`
	ExpenseType   *ExpenseType    `json:"expense_type,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateExpenseRequest is the wire shape accepted by POST /api/v1/expenses
type CreateExpenseRequest struct {
	UserID      int             `json:"userId"`
	ExpenseDate string          `json:"expenseDate"`
	Amount      decimal.Decimal `json:"amount"`
	Comment     string          `json:"comment"`
	Type        string          `json:"type"`
	Currency    string          `json:"currency"`
}

// ExpenseResponse is the wire shape returned for a single expense
type ExpenseResponse struct {
	ID           int64           `json:"id"`
	ExpenseDate  time.Time       `json:"expenseDate"`
	Amount       decimal.Decimal `json:"amount"`
	Comment      string          `json:"comment"`
	Type         string          `json:"type"`
	Currency     string          `json:"currency"`
	UserFullName string          `json:"userFullName"`
}
