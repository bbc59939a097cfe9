package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("budget not found")
	ErrExists   = errors.New("budget already exists for this category and month")
)

// Repository is the read/write surface for budgets outside a ledger
// unit of work.
type Repository interface {
	ForPeriod(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (*Budget, error)
	ListPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*Budget, error)
	SpentFromExpenses(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (decimal.Decimal, error)
	SyncSpent(ctx context.Context, id uuid.UUID, spent decimal.Decimal) error
	Create(ctx context.Context, b *Budget) error
}

// Service serves budget snapshots and budget creation. All derived
// figures are computed here on read, never persisted.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID           uuid.UUID
	CategoryID       uuid.UUID
	Amount           decimal.Decimal
	Month            int
	Year             int
	RolloverEnabled  bool
	AlertAt90Percent bool
}

// Create opens a budget for one category and month, seeding the spent
// accumulator from the expenses already recorded in that period.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Budget, error) {
	existing, err := s.repo.ForPeriod(ctx, params.UserID, params.CategoryID, params.Month, params.Year)
	if err != nil {
		return nil, fmt.Errorf("checking existing budget: %w", err)
	}

	if existing != nil {
		return nil, ErrExists
	}

	spent, err := s.repo.SpentFromExpenses(ctx, params.UserID, params.CategoryID, params.Month, params.Year)
	if err != nil {
		return nil, fmt.Errorf("seeding spent: %w", err)
	}

	b := &Budget{
		UserID:           params.UserID,
		CategoryID:       params.CategoryID,
		Amount:           params.Amount,
		Spent:            spent,
		RolloverAmount:   decimal.Zero,
		RolloverEnabled:  params.RolloverEnabled,
		AlertAt90Percent: params.AlertAt90Percent,
		Month:            params.Month,
		Year:             params.Year,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("creating budget: %w", err)
	}

	return b, nil
}

// Snapshot returns the derived view of one budget.
func (s *Service) Snapshot(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (*Snapshot, error) {
	b, err := s.repo.ForPeriod(ctx, userID, categoryID, month, year)
	if err != nil {
		return nil, fmt.Errorf("looking up budget: %w", err)
	}

	if b == nil {
		return nil, ErrNotFound
	}

	snap := b.Snapshot()

	return &snap, nil
}

// ListMonth returns the derived view of every budget in the month.
// The spent accumulator is defensively resynced against the actual
// expense sum before projecting; a drift here means a tracker bug, but
// the list view self-heals rather than displaying a stale figure.
func (s *Service) ListMonth(ctx context.Context, userID uuid.UUID, month, year int) ([]Snapshot, error) {
	budgets, err := s.repo.ListPeriod(ctx, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}

	snapshots := make([]Snapshot, 0, len(budgets))

	for _, b := range budgets {
		actual, err := s.repo.SpentFromExpenses(ctx, userID, b.CategoryID, month, year)
		if err != nil {
			return nil, fmt.Errorf("recomputing spent: %w", err)
		}

		if !actual.Equal(b.Spent) {
			if err := s.repo.SyncSpent(ctx, b.ID, actual); err != nil {
				return nil, fmt.Errorf("resyncing spent: %w", err)
			}

			b.Spent = actual
		}

		snapshots = append(snapshots, b.Snapshot())
	}

	return snapshots, nil
}
