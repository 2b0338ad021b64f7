package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/expenses-dev/expenses-service/internal/models"
)

// FindCurrencyByCode retrieves a currency by its code, case-insensitively.
func (r *Repository) FindCurrencyByCode(ctx context.Context, code string) (*models.Currency, error) {
	currency := &models.Currency{}
	query := `
		SELECT id, code, name, created_at
		FROM currencies
		WHERE LOWER(code) = LOWER($1)`
	err := r.db.QueryRowContext(ctx, query, code).
		Scan(&currency.ID, &currency.Code, &currency.Name, &currency.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("currency with code %s: %w", code, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find currency: %w", err)
	}
	return currency, nil
}
