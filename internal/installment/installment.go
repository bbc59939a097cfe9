package installment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// Installment is a purchase paid off in fixed monthly amounts from a
// configured source. PaidMonths never exceeds TotalMonths; the status
// flips to completed exactly when they meet.
type Installment struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	BankAccountID *uuid.UUID
	FundSourceID  *uuid.UUID
	ItemName      string
	TotalAmount   decimal.Decimal
	MonthlyAmount decimal.Decimal
	TotalMonths   int
	PaidMonths    int
	StartDate     time.Time
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

func (i *Installment) RemainingMonths() int {
	return i.TotalMonths - i.PaidMonths
}

// RecordPayment advances progress by the given number of months and
// completes the plan when the last month is paid. Callers validate the
// month count against RemainingMonths first.
func (i *Installment) RecordPayment(months int) {
	i.PaidMonths += months

	if i.PaidMonths >= i.TotalMonths {
		i.PaidMonths = i.TotalMonths
		i.Status = StatusCompleted
	}
}

type Tx interface {
	InstallmentForUpdate(ctx context.Context, userID, id uuid.UUID) (*Installment, error)
	UpdateInstallmentProgress(ctx context.Context, id uuid.UUID, paidMonths int, status Status) error
}
