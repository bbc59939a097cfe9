package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// nearLimitThreshold is the percentage at which a budget counts as
// nearly used up.
const nearLimitThreshold = 90

// Budget is a monthly spending limit for one category. Spent is an
// accumulator kept in lockstep with expense mutations by the tracker;
// it must always equal the sum of the user's expenses in that category
// and month. All other figures are derived on read, never stored.
type Budget struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	CategoryID       uuid.UUID
	Amount           decimal.Decimal
	Spent            decimal.Decimal
	RolloverAmount   decimal.Decimal
	RolloverEnabled  bool
	AlertAt90Percent bool
	Month            int
	Year             int
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// TotalBudget is the limit plus whatever rolled over from the previous
// month.
func (b *Budget) TotalBudget() decimal.Decimal {
	return b.Amount.Add(b.RolloverAmount)
}

func (b *Budget) Remaining() decimal.Decimal {
	return b.TotalBudget().Sub(b.Spent)
}

func (b *Budget) PercentageUsed() float64 {
	total := b.TotalBudget()
	if total.Sign() <= 0 {
		return 0
	}

	pct, _ := b.Spent.Div(total).Mul(decimal.NewFromInt(100)).Float64()

	return pct
}

func (b *Budget) IsNearLimit() bool {
	return b.PercentageUsed() >= nearLimitThreshold
}

func (b *Budget) IsExceeded() bool {
	return b.Spent.GreaterThan(b.TotalBudget())
}

// Snapshot is the read-only projection handed to display layers, with
// every derived figure materialized.
type Snapshot struct {
	ID               uuid.UUID
	CategoryID       uuid.UUID
	Amount           decimal.Decimal
	Spent            decimal.Decimal
	RolloverAmount   decimal.Decimal
	TotalBudget      decimal.Decimal
	Remaining        decimal.Decimal
	PercentageUsed   float64
	IsNearLimit      bool
	IsExceeded       bool
	RolloverEnabled  bool
	AlertAt90Percent bool
	Month            int
	Year             int
}

func (b *Budget) Snapshot() Snapshot {
	return Snapshot{
		ID:               b.ID,
		CategoryID:       b.CategoryID,
		Amount:           b.Amount,
		Spent:            b.Spent,
		RolloverAmount:   b.RolloverAmount,
		TotalBudget:      b.TotalBudget(),
		Remaining:        b.Remaining(),
		PercentageUsed:   b.PercentageUsed(),
		IsNearLimit:      b.IsNearLimit(),
		IsExceeded:       b.IsExceeded(),
		RolloverEnabled:  b.RolloverEnabled,
		AlertAt90Percent: b.AlertAt90Percent,
		Month:            b.Month,
		Year:             b.Year,
	}
}
