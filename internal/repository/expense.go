package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/expenses-dev/expenses-service/internal/models"
)

const expenseColumns = `
	e.id, e.expense_date, e.comment, e.amount,
	e.user_id, e.currency_id, e.expense_type_id, e.created_at, e.updated_at,
	u.id, u.first_name, u.last_name, u.currency_id, u.created_at, u.updated_at,
	c.id, c.code, c.name, c.created_at,
	t.id, t.label, t.created_at`

const expenseJoins = `
	FROM expenses e
	JOIN users u ON u.id = e.user_id
	JOIN currencies c ON c.id = e.currency_id
	JOIN expense_types t ON t.id = e.expense_type_id`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	e := &models.Expense{
		User:        &models.User{},
		Currency:    &models.Currency{},
		ExpenseType: &models.ExpenseType{},
	}
	err := row.Scan(
		&e.ID, &e.ExpenseDate, &e.Comment, &e.Amount,
		&e.UserID, &e.CurrencyID, &e.ExpenseTypeID, &e.CreatedAt, &e.UpdatedAt,
		&e.User.ID, &e.User.FirstName, &e.User.LastName, &e.User.CurrencyID,
		&e.User.CreatedAt, &e.User.UpdatedAt,
		&e.Currency.ID, &e.Currency.Code, &e.Currency.Name, &e.Currency.CreatedAt,
		&e.ExpenseType.ID, &e.ExpenseType.Label, &e.ExpenseType.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// FindExpenseByID retrieves an expense with its currency, type and user resolved.
func (r *Repository) FindExpenseByID(ctx context.Context, id int64) (*models.Expense, error) {
	query := `SELECT` + expenseColumns + expenseJoins + ` WHERE e.id = $1`
	expense, err := scanExpense(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense with id %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return expense, nil
}

// FindExpenseByUserDateAmount looks up an expense for the same user with the
// same calendar date and amount. Dates are compared at day granularity.
func (r *Repository) FindExpenseByUserDateAmount(ctx context.Context, userID int, date time.Time, amount decimal.Decimal) (*models.Expense, error) {
	query := `SELECT` + expenseColumns + expenseJoins + `
		WHERE e.user_id = $1 AND e.expense_date::date = $2::date AND e.amount = $3`
	expense, err := scanExpense(r.db.QueryRowContext(ctx, query, userID, date, amount))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense for user %d on %s: %w", userID, date.Format("2006-01-02"), ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find expense by date and amount: %w", err)
	}
	return expense, nil
}

// ListExpenses retrieves expenses, optionally filtered by user, ordered by
// the given key and direction. Ties are broken by id ascending so the order
// is deterministic.
func (r *Repository) ListExpenses(ctx context.Context, userID *int, sortBy models.SortBy, sortOrder models.SortOrder) ([]*models.Expense, error) {
	query := `SELECT` + expenseColumns + expenseJoins

	args := []any{}
	if userID != nil {
		query += ` WHERE e.user_id = $1`
		args = append(args, *userID)
	}

	direction := "ASC"
	if sortOrder == models.SortOrderDescending {
		direction = "DESC"
	}
	switch sortBy {
	case models.SortByAmount:
		query += fmt.Sprintf(" ORDER BY e.amount %s, e.id ASC", direction)
	default:
		query += fmt.Sprintf(" ORDER BY e.expense_date %s, e.id ASC", direction)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// InsertExpense persists a new expense and fills in its generated id and
// timestamps. A unique-index violation on (user, day, amount) surfaces as
// ErrDuplicateExpense.
func (r *Repository) InsertExpense(ctx context.Context, expense *models.Expense) error {
	query := `
		INSERT INTO expenses (expense_date, comment, amount, user_id, currency_id, expense_type_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		expense.ExpenseDate, expense.Comment, expense.Amount,
		expense.UserID, expense.CurrencyID, expense.ExpenseTypeID,
		expense.CreatedAt, expense.UpdatedAt).
		Scan(&expense.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateExpense
		}
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// CurrencyStats aggregates expense counts and totals for one currency.
type CurrencyStats struct {
	CurrencyCode string
	Count        int
	Total        decimal.Decimal
}

// ExpenseStatsByCurrency aggregates all expenses per currency, for the daily
// summary job.
func (r *Repository) ExpenseStatsByCurrency(ctx context.Context) ([]CurrencyStats, error) {
	query := `
		SELECT c.code, COUNT(*), COALESCE(SUM(e.amount), 0)
		FROM expenses e
		JOIN currencies c ON c.id = e.currency_id
		GROUP BY c.code
		ORDER BY c.code`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate expenses: %w", err)
	}
	defer rows.Close()

	stats := []CurrencyStats{}
	for rows.Next() {
		var s CurrencyStats
		if err := rows.Scan(&s.CurrencyCode, &s.Count, &s.Total); err != nil {
			return nil, fmt.Errorf("failed to scan stats: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to aggregate expenses: %w", err)
	}
	return stats, nil
}
