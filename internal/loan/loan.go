package loan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo-app/centavo/internal/source"
)

// Status tracks how much of the borrowed principal has been repaid.
type Status string

const (
	StatusUnpaid        Status = "unpaid"
	StatusPartiallyPaid Status = "partially_paid"
	StatusPaid          Status = "paid"
)

// Loan tracks borrowed money. Two balances live side by side: the
// repayment obligation (BalanceRemaining, reduced by repayments) and,
// for funding-source loans, the spendable draw-down (AvailableBalance,
// derived from the expenses drawn against the loan). The two are
// independent.
type Loan struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	LenderName       string
	Amount           decimal.Decimal
	BalanceRemaining decimal.Decimal
	Description      string
	Status           Status
	DueDate          *time.Time
	IsFundingSource  bool

	// AvailableBalance = Amount - sum of expenses drawn against this
	// loan. Populated on load, never written back.
	AvailableBalance decimal.Decimal

	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (l *Loan) SourceKind() source.Kind { return source.KindLoan }

func (l *Loan) CurrentBalance() decimal.Decimal { return l.AvailableBalance }

// StatusFor derives the status from the repayment balance: fully
// repaid, partially repaid, or untouched.
func StatusFor(amount, balanceRemaining decimal.Decimal) Status {
	switch {
	case balanceRemaining.Sign() == 0:
		return StatusPaid
	case balanceRemaining.LessThan(amount):
		return StatusPartiallyPaid
	default:
		return StatusUnpaid
	}
}

// ApplyRepayment reduces the repayment balance and recomputes status.
// Balance is clamped at zero.
func (l *Loan) ApplyRepayment(amount decimal.Decimal) {
	l.BalanceRemaining = l.BalanceRemaining.Sub(amount)
	if l.BalanceRemaining.Sign() < 0 {
		l.BalanceRemaining = decimal.Zero
	}

	l.Status = StatusFor(l.Amount, l.BalanceRemaining)
}

// RecomputeOnAmountChange adjusts the repayment balance after the
// principal is edited, preserving the amount already paid. It reports
// whether the stored state was corrupted (balance above principal), in
// which case the balance is reset to the new principal and the status
// to unpaid. Callers must log corrupted recoveries as warnings.
func (l *Loan) RecomputeOnAmountChange(newAmount decimal.Decimal) (corrupted bool) {
	if l.BalanceRemaining.GreaterThan(l.Amount) {
		l.Amount = newAmount
		l.BalanceRemaining = newAmount
		l.Status = StatusUnpaid

		return true
	}

	paid := l.Amount.Sub(l.BalanceRemaining)

	l.Amount = newAmount

	l.BalanceRemaining = newAmount.Sub(paid)
	if l.BalanceRemaining.Sign() < 0 {
		l.BalanceRemaining = decimal.Zero
	}

	switch {
	case l.BalanceRemaining.Sign() == 0:
		l.Status = StatusPaid
	case paid.Sign() > 0:
		l.Status = StatusPartiallyPaid
	default:
		l.Status = StatusUnpaid
	}

	return false
}

// PercentagePaid returns how much of the principal has been repaid,
// rounded to two decimal places.
func (l *Loan) PercentagePaid() decimal.Decimal {
	if l.Amount.Sign() <= 0 {
		return decimal.Zero
	}

	paid := l.Amount.Sub(l.BalanceRemaining)

	return paid.Div(l.Amount).Mul(decimal.NewFromInt(100)).Round(2)
}

// Repayment is an immutable log row linking a loan to the expense that
// paid it. Never mutated after creation.
type Repayment struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	LoanID      uuid.UUID
	ExpenseID   uuid.UUID
	Amount      decimal.Decimal
	PaymentDate time.Time
	Description string
	CreatedAt   time.Time
}

// Tx is the unit-of-work surface for loan mutation. LoanForUpdate
// takes a row lock and returns the loan with AvailableBalance
// populated.
type Tx interface {
	CreateLoan(ctx context.Context, l *Loan) error
	LoanForUpdate(ctx context.Context, userID, id uuid.UUID) (*Loan, error)
	UpdateLoan(ctx context.Context, l *Loan) error
	CreateRepayment(ctx context.Context, r *Repayment) error

	// RepaymentExistsForExpense reports whether a repayment log row
	// references the expense. Such expenses are frozen: editing or
	// deleting them would contradict the immutable log.
	RepaymentExistsForExpense(ctx context.Context, expenseID uuid.UUID) (bool, error)
}
