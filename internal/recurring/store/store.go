package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/centavo-app/centavo/internal/recurring"
)

// runLockKey identifies the due-transaction batch in pg advisory lock
// space. One constant key: at most one run at a time, cluster-wide.
const runLockKey int64 = 0x63656e7461766f01

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

const selectRecurringColumns = `
	id, user_id, category_id, bank_account_id, fund_source_id, name, description,
	amount, frequency, start_date, end_date, next_due_date, last_processed_date,
	is_active, created_at, updated_at
`

func scanTransaction(s scanner) (*recurring.Transaction, error) {
	var rt recurring.Transaction

	var frequency string

	if err := s.Scan(
		&rt.ID, &rt.UserID, &rt.CategoryID, &rt.BankAccountID, &rt.FundSourceID,
		&rt.Name, &rt.Description, &rt.Amount, &frequency, &rt.StartDate,
		&rt.EndDate, &rt.NextDueDate, &rt.LastProcessedDate, &rt.IsActive,
		&rt.CreatedAt, &rt.UpdatedAt,
	); err != nil {
		return nil, err
	}

	rt.Frequency = recurring.Frequency(frequency)

	return &rt, nil
}

func (s *Store) ListDue(ctx context.Context, asOf time.Time) ([]*recurring.Transaction, error) {
	query := `SELECT ` + selectRecurringColumns + `
		FROM recurring_transactions
		WHERE is_active AND next_due_date <= $1
		ORDER BY next_due_date ASC`

	return s.list(ctx, query, asOf)
}

func (s *Store) ListByUser(ctx context.Context, userID uuid.UUID) ([]*recurring.Transaction, error) {
	query := `SELECT ` + selectRecurringColumns + `
		FROM recurring_transactions
		WHERE user_id = $1
		ORDER BY next_due_date ASC`

	return s.list(ctx, query, userID)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*recurring.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing recurring transactions: %w", err)
	}
	defer rows.Close()

	var txs []*recurring.Transaction

	for rows.Next() {
		rt, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recurring transaction: %w", err)
		}

		txs = append(txs, rt)
	}

	return txs, rows.Err()
}

// AcquireRunLock takes a session-level advisory lock on a dedicated
// connection. The lock outlives individual transactions, which is what
// the batch needs: each item commits its own unit of work while the
// lock pins the whole run.
func (s *Store) AcquireRunLock(ctx context.Context) (func(), bool, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("acquiring connection: %w", err)
	}

	var locked bool
	if err := conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", runLockKey).Scan(&locked); err != nil {
		conn.Close()
		return nil, false, fmt.Errorf("acquiring run lock: %w", err)
	}

	if !locked {
		conn.Close()
		return nil, false, nil
	}

	release := func() {
		if _, err := conn.ExecContext(context.Background(), "SELECT pg_advisory_unlock($1)", runLockKey); err != nil {
			slog.Warn("releasing run lock", "error", err)
		}

		conn.Close()
	}

	return release, true, nil
}
