package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/expenses-dev/expenses-service/internal/models"
)

// FindUserByID retrieves a user together with their currency. The currency
// is loaded eagerly because the creation engine compares codes against it.
func (r *Repository) FindUserByID(ctx context.Context, id int) (*models.User, error) {
	user := &models.User{Currency: &models.Currency{}}
	query := `
		SELECT u.id, u.first_name, u.last_name, u.currency_id, u.created_at, u.updated_at,
		       c.id, c.code, c.name, c.created_at
		FROM users u
		JOIN currencies c ON c.id = u.currency_id
		WHERE u.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.CurrencyID, &user.CreatedAt, &user.UpdatedAt,
		&user.Currency.ID, &user.Currency.Code, &user.Currency.Name, &user.Currency.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user with id %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
