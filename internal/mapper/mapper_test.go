package mapper

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenses-dev/expenses-service/internal/models"
)

func TestExpenseFromRequest(t *testing.T) {
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	req := models.CreateExpenseRequest{
		UserID:      1,
		ExpenseDate: "2026-08-20",
		Amount:      decimal.RequireFromString("100.00"),
		Comment:     "lunch",
		Type:        "Restaurant",
		Currency:    "USD",
	}

	expense := ExpenseFromRequest(req, date)

	assert.Equal(t, 1, expense.UserID)
	assert.Equal(t, date, expense.ExpenseDate)
	assert.True(t, expense.Amount.Equal(req.Amount))
	assert.Equal(t, "lunch", expense.Comment)

	// Generated fields are left for the engine.
	assert.Zero(t, expense.ID)
	assert.Nil(t, expense.Currency)
	assert.Nil(t, expense.ExpenseType)
	assert.True(t, expense.CreatedAt.IsZero())
}

func TestExpenseToResponse(t *testing.T) {
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	expense := &models.Expense{
		ID:          7,
		ExpenseDate: date,
		Amount:      decimal.RequireFromString("100.00"),
		Comment:     "lunch",
		User:        &models.User{FirstName: "Anthony", LastName: "Stark"},
		Currency:    &models.Currency{Code: "USD"},
		ExpenseType: &models.ExpenseType{Label: "Restaurant"},
	}

	resp := ExpenseToResponse(expense)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Anthony Stark", resp.UserFullName)
	assert.Equal(t, "Restaurant", resp.Type)
	assert.Equal(t, "USD", resp.Currency)
}

// Translating a request into an expense and back must preserve amount,
// date, comment and currency code exactly.
func TestTranslationRoundTrip(t *testing.T) {
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	req := models.CreateExpenseRequest{
		UserID:      1,
		ExpenseDate: "2026-08-20",
		Amount:      decimal.RequireFromString("123.45"),
		Comment:     "team dinner",
		Type:        "Restaurant",
		Currency:    "USD",
	}

	expense := ExpenseFromRequest(req, date)
	expense.Currency = &models.Currency{Code: req.Currency}
	expense.ExpenseType = &models.ExpenseType{Label: req.Type}
	expense.User = &models.User{FirstName: "Anthony", LastName: "Stark"}

	resp := ExpenseToResponse(&expense)

	require.True(t, resp.Amount.Equal(req.Amount), "no precision loss on the amount")
	assert.Equal(t, "123.45", resp.Amount.StringFixed(2))
	assert.Equal(t, req.ExpenseDate, resp.ExpenseDate.Format("2006-01-02"))
	assert.Equal(t, req.Comment, resp.Comment)
	assert.Equal(t, req.Currency, resp.Currency)
}

func TestExpensesToResponsesPreservesOrder(t *testing.T) {
	expenses := []*models.Expense{
		{ID: 2, Amount: decimal.RequireFromString("200.00")},
		{ID: 1, Amount: decimal.RequireFromString("100.00")},
	}

	responses := ExpensesToResponses(expenses)

	require.Len(t, responses, 2)
	assert.Equal(t, int64(2), responses[0].ID)
	assert.Equal(t, int64(1), responses[1].ID)
}
