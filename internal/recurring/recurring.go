package recurring

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency is how often a recurring transaction materializes.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// NextAfter returns the due date one period after current.
func (f Frequency) NextAfter(current time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return current.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return current.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return current.AddDate(0, 1, 0)
	case FrequencyYearly:
		return current.AddDate(1, 0, 0)
	}

	return current
}

// Transaction is a template that periodically materializes into a
// concrete expense. NextDueDate is always at or after
// LastProcessedDate; once advancement pushes NextDueDate past EndDate
// the series deactivates permanently.
type Transaction struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	CategoryID        uuid.UUID
	BankAccountID     *uuid.UUID
	FundSourceID      *uuid.UUID
	Name              string
	Description       string
	Amount            decimal.Decimal
	Frequency         Frequency
	StartDate         time.Time
	EndDate           *time.Time
	NextDueDate       time.Time
	LastProcessedDate *time.Time
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// IsDue reports whether the transaction should materialize as of the
// given date.
func (t *Transaction) IsDue(asOf time.Time) bool {
	return t.IsActive && !t.NextDueDate.After(asOf)
}

// Advance computes the schedule state after the current due date is
// processed: the due date just handled becomes the last processed
// date, the next due date moves one period forward, and the series
// deactivates when that new date passes the end date.
func (t *Transaction) Advance() (lastProcessed, nextDue time.Time, active bool) {
	lastProcessed = t.NextDueDate
	nextDue = t.Frequency.NextAfter(t.NextDueDate)

	active = t.IsActive
	if t.EndDate != nil && nextDue.After(*t.EndDate) {
		active = false
	}

	return lastProcessed, nextDue, active
}

// ExpenseDescription is what the materialized expense carries.
func (t *Transaction) ExpenseDescription() string {
	if t.Description != "" {
		return t.Description
	}

	return "Recurring: " + t.Name
}

// Tx is the unit-of-work surface for advancing a schedule. It is part
// of the same atomic unit that creates the materialized expense.
type Tx interface {
	UpdateRecurringSchedule(ctx context.Context, id uuid.UUID, lastProcessed, nextDue time.Time, active bool) error
}
