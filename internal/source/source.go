package source

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind identifies the concrete variant behind a PaymentSource.
type Kind string

const (
	KindBank Kind = "bank_account"
	KindFund Kind = "fund_source"
	KindLoan Kind = "loan"
)

// PaymentSource is anything a financial record can draw on or pay into.
// CurrentBalance is the spendable amount: the stored balance for bank
// accounts and fund sources, the derived available balance for
// funding-source loans.
type PaymentSource interface {
	SourceKind() Kind
	CurrentBalance() decimal.Decimal
}

// BankAccount holds a user's bank balance.
type BankAccount struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (a *BankAccount) SourceKind() Kind { return KindBank }

func (a *BankAccount) CurrentBalance() decimal.Decimal { return a.Balance }

// FundSource is a cash or wallet-like balance not tied to a bank.
type FundSource struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func (f *FundSource) SourceKind() Kind { return KindFund }

func (f *FundSource) CurrentBalance() decimal.Decimal { return f.Amount }

// Tx is the unit-of-work surface for reading and mutating source
// balances. The ForUpdate reads take row locks so that concurrent
// spends against the same source serialize; the Apply writes are
// atomic increments, never read-then-write.
type Tx interface {
	BankAccountForUpdate(ctx context.Context, userID, id uuid.UUID) (*BankAccount, error)
	FundSourceForUpdate(ctx context.Context, userID, id uuid.UUID) (*FundSource, error)

	ApplyBankBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
	ApplyFundBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
}
