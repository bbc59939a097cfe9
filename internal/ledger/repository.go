package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/centavo-app/centavo/internal/budget"
	"github.com/centavo-app/centavo/internal/installment"
	"github.com/centavo-app/centavo/internal/loan"
	"github.com/centavo-app/centavo/internal/recurring"
	"github.com/centavo-app/centavo/internal/source"
)

//go:generate mockgen -destination=repository_mock.go -package=ledger github.com/centavo-app/centavo/internal/ledger Repository,Tx

// Tx is one atomic unit of work. Every balance, budget and record
// write inside a service operation goes through the same Tx and
// becomes visible only on Commit; any failure rolls the whole unit
// back. Atomicity is an explicit parameter here, not ambient state.
type Tx interface {
	source.Tx
	budget.Tx
	loan.Tx
	installment.Tx
	recurring.Tx

	CreateExpense(ctx context.Context, e *Expense) error
	ExpenseForUpdate(ctx context.Context, userID, id uuid.UUID) (*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error

	CreateIncome(ctx context.Context, in *Income) error
	IncomeForUpdate(ctx context.Context, userID, id uuid.UUID) (*Income, error)
	UpdateIncome(ctx context.Context, in *Income) error
	DeleteIncome(ctx context.Context, id uuid.UUID) error

	// CategoryOwned reports whether the category exists and is either
	// global or owned by the user.
	CategoryOwned(ctx context.Context, userID, categoryID uuid.UUID) (bool, error)

	Commit() error
	Rollback() error
}

// Repository opens units of work and serves the read-only lookups the
// display layers need.
type Repository interface {
	Begin(ctx context.Context) (Tx, error)

	Expense(ctx context.Context, userID, id uuid.UUID) (*Expense, error)
	Income(ctx context.Context, userID, id uuid.UUID) (*Income, error)
	ListExpenses(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Expense, error)
	ListIncomes(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Income, error)
}
