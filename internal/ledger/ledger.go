package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo-app/centavo/internal/source"
)

// SourceRef designates the payment source of a financial record. A
// valid reference selects exactly one variant; loan references are
// only valid for expenses.
type SourceRef struct {
	BankAccountID *uuid.UUID
	FundSourceID  *uuid.UUID
	LoanID        *uuid.UUID
}

// Kind validates the reference and returns the selected variant.
func (r SourceRef) Kind() (source.Kind, error) {
	var (
		kind  source.Kind
		count int
	)

	if r.BankAccountID != nil {
		kind = source.KindBank
		count++
	}

	if r.FundSourceID != nil {
		kind = source.KindFund
		count++
	}

	if r.LoanID != nil {
		kind = source.KindLoan
		count++
	}

	if count != 1 {
		return "", ErrInvalidPaymentSource
	}

	return kind, nil
}

// Empty reports whether no source is selected at all.
func (r SourceRef) Empty() bool {
	return r.BankAccountID == nil && r.FundSourceID == nil && r.LoanID == nil
}

// Expense is money spent from one payment source. Repayment expenses
// additionally carry the loan they pay down alongside the bank or fund
// source the money came from.
type Expense struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	BankAccountID *uuid.UUID
	FundSourceID  *uuid.UUID
	LoanID        *uuid.UUID
	Amount        decimal.Decimal
	Description   string
	Date          time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// SourceRef returns the payment-source reference of the expense.
func (e *Expense) SourceRef() SourceRef {
	return SourceRef{
		BankAccountID: e.BankAccountID,
		FundSourceID:  e.FundSourceID,
		LoanID:        e.LoanID,
	}
}

// Income is money received into a bank account or fund source. Incomes
// never touch budgets; budgets track spending only.
type Income struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	BankAccountID *uuid.UUID
	FundSourceID  *uuid.UUID
	Amount        decimal.Decimal
	Description   string
	Date          time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

func (in *Income) SourceRef() SourceRef {
	return SourceRef{
		BankAccountID: in.BankAccountID,
		FundSourceID:  in.FundSourceID,
	}
}

// ListFilter narrows record listings.
type ListFilter struct {
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
