// Package mapper converts between wire-facing request/response shapes and
// internal entities. It performs no validation and has no side effects.
package mapper

import (
	"time"

	"github.com/expenses-dev/expenses-service/internal/models"
)

// ExpenseFromRequest builds the internal expense consumed by the creation
// engine. Generated fields (id, timestamps, resolved references) are left
// for the engine to fill in.
func ExpenseFromRequest(req models.CreateExpenseRequest, date time.Time) models.Expense {
	return models.Expense{
		UserID:      req.UserID,
		ExpenseDate: date,
		Amount:      req.Amount,
		Comment:     req.Comment,
	}
}

// ExpenseToResponse flattens an expense with resolved references into the
// outbound response shape.
func ExpenseToResponse(e *models.Expense) models.ExpenseResponse {
	resp := models.ExpenseResponse{
		ID:          e.ID,
		ExpenseDate: e.ExpenseDate,
		Amount:      e.Amount,
		Comment:     e.Comment,
	}
	if e.ExpenseType != nil {
		resp.Type = e.ExpenseType.Label
	}
	if e.Currency != nil {
		resp.Currency = e.Currency.Code
	}
	if e.User != nil {
		resp.UserFullName = e.User.FullName()
	}
	return resp
}

// ExpensesToResponses maps a list of expenses preserving order.
func ExpensesToResponses(expenses []*models.Expense) []models.ExpenseResponse {
	responses := make([]models.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, ExpenseToResponse(e))
	}
	return responses
}
