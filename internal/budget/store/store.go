package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo-app/centavo/internal/budget"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectBudgetColumns = `
	id, user_id, category_id, amount, spent, rollover_amount,
	rollover_enabled, alert_at_90_percent, month, year, created_at, updated_at
`

func scanBudget(s scanner) (*budget.Budget, error) {
	var b budget.Budget

	if err := s.Scan(
		&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Spent, &b.RolloverAmount,
		&b.RolloverEnabled, &b.AlertAt90Percent, &b.Month, &b.Year, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Store) ForPeriod(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND category_id = $2 AND month = $3 AND year = $4`

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, userID, categoryID, month, year))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	return b, nil
}

func (s *Store) ListPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND month = $2 AND year = $3
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget

	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	return budgets, rows.Err()
}

func (s *Store) SpentFromExpenses(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE user_id = $1 AND category_id = $2
		  AND EXTRACT(MONTH FROM date) = $3 AND EXTRACT(YEAR FROM date) = $4
	`

	var spent decimal.Decimal
	if err := s.db.QueryRowContext(ctx, query, userID, categoryID, month, year).Scan(&spent); err != nil {
		return decimal.Zero, fmt.Errorf("summing expenses: %w", err)
	}

	return spent, nil
}

func (s *Store) SyncSpent(ctx context.Context, id uuid.UUID, spent decimal.Decimal) error {
	query := `UPDATE budgets SET spent = $1, updated_at = NOW() WHERE id = $2`

	if _, err := s.db.ExecContext(ctx, query, spent, id); err != nil {
		return fmt.Errorf("syncing spent: %w", err)
	}

	return nil
}

func (s *Store) Create(ctx context.Context, b *budget.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category_id, amount, spent, rollover_amount,
			rollover_enabled, alert_at_90_percent, month, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.UserID,
		b.CategoryID,
		b.Amount,
		b.Spent,
		b.RolloverAmount,
		b.RolloverEnabled,
		b.AlertAt90Percent,
		b.Month,
		b.Year,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating budget: %w", err)
	}

	return nil
}
