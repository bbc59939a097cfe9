package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=tx_mock.go -package=budget github.com/centavo-app/centavo/internal/budget Tx,Repository

// Tx is the unit-of-work surface the tracker mutates budgets through.
// AddBudgetSpent and AddBudgetRollover are atomic increments.
type Tx interface {
	BudgetForPeriod(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (*Budget, error)
	AddBudgetSpent(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error

	RolloverCandidates(ctx context.Context, userID uuid.UUID, month, year int) ([]*Budget, error)
	CreateBudget(ctx context.Context, b *Budget) error
	AddBudgetRollover(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}

// AdjustSpent adds delta to the budget covering the month of date.
// Budgets are opt-in per month: when none exists this is a no-op, not
// an error. Date or category edits are two separate calls, a negative
// adjustment against the original bucket and a positive one against
// the new bucket.
func AdjustSpent(ctx context.Context, tx Tx, userID, categoryID uuid.UUID, date time.Time, delta decimal.Decimal) error {
	b, err := tx.BudgetForPeriod(ctx, userID, categoryID, int(date.Month()), date.Year())
	if err != nil {
		return fmt.Errorf("looking up budget: %w", err)
	}

	if b == nil {
		return nil
	}

	if err := tx.AddBudgetSpent(ctx, b.ID, delta); err != nil {
		return fmt.Errorf("adjusting budget spent: %w", err)
	}

	return nil
}

// ProcessRollover carries the unspent remainder of every
// rollover-enabled budget from the month before (month, year) into
// that month, creating the target budget when absent. It returns the
// number of budgets carried over.
//
// Calling this twice for the same month double-adds the rollover;
// callers must guarantee at-most-once invocation per month transition.
func ProcessRollover(ctx context.Context, tx Tx, userID uuid.UUID, month, year int) (int, error) {
	prevMonth, prevYear := previousPeriod(month, year)

	candidates, err := tx.RolloverCandidates(ctx, userID, prevMonth, prevYear)
	if err != nil {
		return 0, fmt.Errorf("listing rollover candidates: %w", err)
	}

	carried := 0

	for _, prev := range candidates {
		remaining := prev.Remaining()
		if remaining.Sign() <= 0 {
			continue
		}

		current, err := tx.BudgetForPeriod(ctx, userID, prev.CategoryID, month, year)
		if err != nil {
			return carried, fmt.Errorf("looking up target budget: %w", err)
		}

		if current == nil {
			b := &Budget{
				UserID:           userID,
				CategoryID:       prev.CategoryID,
				Amount:           prev.Amount,
				RolloverAmount:   remaining,
				RolloverEnabled:  true,
				AlertAt90Percent: prev.AlertAt90Percent,
				Month:            month,
				Year:             year,
			}
			if err := tx.CreateBudget(ctx, b); err != nil {
				return carried, fmt.Errorf("creating rollover budget: %w", err)
			}
		} else {
			if err := tx.AddBudgetRollover(ctx, current.ID, remaining); err != nil {
				return carried, fmt.Errorf("adding rollover: %w", err)
			}
		}

		carried++
	}

	return carried, nil
}

func previousPeriod(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}

	return month - 1, year
}
