package repository

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a looked-up entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateExpense is returned when the unique (user, day, amount) index
// rejects an insert.
var ErrDuplicateExpense = errors.New("duplicate expense")

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the schema and seeds reference data. It is idempotent and
// runs at startup.
func (r *Repository) Migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS currencies (
			id SERIAL PRIMARY KEY,
			code VARCHAR(10) NOT NULL,
			name VARCHAR(100) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS expense_types (
			id SERIAL PRIMARY KEY,
			label VARCHAR(100) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			currency_id INTEGER NOT NULL REFERENCES currencies(id),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id SERIAL PRIMARY KEY,
			expense_date TIMESTAMP NOT NULL,
			comment TEXT,
			amount NUMERIC(18,2) NOT NULL,
			user_id INTEGER NOT NULL REFERENCES users(id),
			currency_id INTEGER NOT NULL REFERENCES currencies(id),
			expense_type_id INTEGER NOT NULL REFERENCES expense_types(id),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		// Closes the duplicate-guard race the read-then-write check leaves open.
		`CREATE UNIQUE INDEX IF NOT EXISTS expenses_user_day_amount_idx
			ON expenses (user_id, (expense_date::date), amount)`,
		`INSERT INTO currencies (id, code, name)
			VALUES (1, 'USD', 'U.S Dollar'), (2, 'RUB', 'Russian Ruble')
			ON CONFLICT (id) DO NOTHING`,
		`INSERT INTO expense_types (id, label)
			VALUES (1, 'Restaurant'), (2, 'Hotel'), (3, 'Misc')
			ON CONFLICT (id) DO NOTHING`,
		`INSERT INTO users (id, first_name, last_name, currency_id)
			VALUES (1, 'Anthony', 'Stark', 1), (2, 'Natasha', 'Romanova', 2)
			ON CONFLICT (id) DO NOTHING`,
		`SELECT setval('currencies_id_seq', (SELECT MAX(id) FROM currencies))`,
		`SELECT setval('expense_types_id_seq', (SELECT MAX(id) FROM expense_types))`,
		`SELECT setval('users_id_seq', (SELECT MAX(id) FROM users))`,
	}

	for _, stmt := range statements {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
