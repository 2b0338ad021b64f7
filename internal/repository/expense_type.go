package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/expenses-dev/expenses-service/internal/models"
)

// FindExpenseTypeByLabel retrieves an expense type by its label, case-insensitively.
func (r *Repository) FindExpenseTypeByLabel(ctx context.Context, label string) (*models.ExpenseType, error) {
	expenseType := &models.ExpenseType{}
	query := `
		SELECT id, label, created_at
		FROM expense_types
		WHERE LOWER(label) = LOWER($1)`
	err := r.db.QueryRowContext(ctx, query, label).
		Scan(&expenseType.ID, &expenseType.Label, &expenseType.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense type with label %s: %w", label, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find expense type: %w", err)
	}
	return expenseType, nil
}
