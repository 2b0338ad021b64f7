package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/expenses-dev/expenses-service/internal/models"
	"github.com/expenses-dev/expenses-service/internal/repository"
)

// Store is the persistence collaborator consumed by the service. Lookups
// that miss return an error wrapping repository.ErrNotFound.
type Store interface {
	FindUserByID(ctx context.Context, id int) (*models.User, error)
	FindCurrencyByCode(ctx context.Context, code string) (*models.Currency, error)
	FindExpenseTypeByLabel(ctx context.Context, label string) (*models.ExpenseType, error)
	FindExpenseByID(ctx context.Context, id int64) (*models.Expense, error)
	FindExpenseByUserDateAmount(ctx context.Context, userID int, date time.Time, amount decimal.Decimal) (*models.Expense, error)
	ListExpenses(ctx context.Context, userID *int, sortBy models.SortBy, sortOrder models.SortOrder) ([]*models.Expense, error)
	InsertExpense(ctx context.Context, expense *models.Expense) error
}

// Service handles business logic
type Service struct {
	store Store
	log   *logrus.Logger
}

// NewService initializes a new service
func NewService(store Store, log *logrus.Logger) *Service {
	return &Service{store: store, log: log}
}

// CreateExpense validates and persists a new expense, returning its
// generated id. Checks run in a fixed order so the first failing one
// determines the error message. No write is issued before every check
// passes.
func (s *Service) CreateExpense(ctx context.Context, expense *models.Expense, currencyCode, typeLabel string) (int64, error) {
	user, err := s.store.FindUserByID(ctx, expense.UserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return 0, err
	}

	// Both lookups happen before any verdict: the later checks need them,
	// but their absence is reported after the user and date checks.
	currency, err := s.store.FindCurrencyByCode(ctx, currencyCode)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return 0, err
	}
	expenseType, err := s.store.FindExpenseTypeByLabel(ctx, typeLabel)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return 0, err
	}

	if user == nil {
		return 0, &NotFoundError{Message: "the given user does not exist"}
	}

	now := time.Now()
	if expense.ExpenseDate.After(now) {
		return 0, &ValidationError{Reason: "the expense date cannot be in the future"}
	}
	if expense.ExpenseDate.Before(now.AddDate(0, -3, 0)) {
		return 0, &ValidationError{Reason: "an expense cannot be dated more than 3 months ago"}
	}
	if expense.Comment == "" {
		return 0, &ValidationError{Reason: "the comment is mandatory"}
	}

	existing, err := s.store.FindExpenseByUserDateAmount(ctx, expense.UserID, expense.ExpenseDate, expense.Amount)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return 0, err
	}
	if existing != nil {
		return 0, &ValidationError{Reason: "this expense already exists, we cannot create it twice"}
	}

	// Exact match on the code string: expenses are always recorded in the
	// user's own currency.
	if user.Currency == nil || user.Currency.Code != currencyCode {
		return 0, &ValidationError{Reason: "the expense currency must match the user's currency"}
	}
	if currency == nil {
		return 0, &ValidationError{Reason: fmt.Sprintf("the currency '%s' does not exist", currencyCode)}
	}
	if expenseType == nil {
		return 0, &ValidationError{Reason: fmt.Sprintf("the expense type '%s' does not exist", typeLabel)}
	}

	expense.User = user
	expense.Currency = currency
	expense.CurrencyID = currency.ID
	expense.ExpenseType = expenseType
	expense.ExpenseTypeID = expenseType.ID
	expense.CreatedAt = now
	expense.UpdatedAt = now

	if err := s.store.InsertExpense(ctx, expense); err != nil {
		if errors.Is(err, repository.ErrDuplicateExpense) {
			// Lost the race against a concurrent identical creation; the
			// unique index is the authority.
			return 0, &ValidationError{Reason: "this expense already exists, we cannot create it twice"}
		}
		return 0, err
	}

	s.log.WithFields(logrus.Fields{
		"expense_id": expense.ID,
		"user_id":    expense.UserID,
		"amount":     expense.Amount.StringFixed(2),
		"currency":   currencyCode,
	}).Info("Expense created")
	return expense.ID, nil
}

// GetExpenseByID retrieves a single expense with its references resolved.
func (s *Service) GetExpenseByID(ctx context.Context, id int64) (*models.Expense, error) {
	expense, err := s.store.FindExpenseByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "the expense does not exist"}
	}
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses retrieves expenses, optionally restricted to one user,
// ordered by the given key and direction. An empty result is not an error.
func (s *Service) ListExpenses(ctx context.Context, userID *int, sortBy models.SortBy, sortOrder models.SortOrder) ([]*models.Expense, error) {
	return s.store.ListExpenses(ctx, userID, sortBy, sortOrder)
}
