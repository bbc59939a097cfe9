package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo-app/centavo/internal/budget"
	"github.com/centavo-app/centavo/internal/installment"
	"github.com/centavo-app/centavo/internal/ledger"
	"github.com/centavo-app/centavo/internal/loan"
	"github.com/centavo-app/centavo/internal/source"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) Begin(ctx context.Context) (ledger.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	return &storeTx{tx: dbTx}, nil
}

func (s *Store) Expense(ctx context.Context, userID, id uuid.UUID) (*ledger.Expense, error) {
	return getExpense(ctx, s.db, userID, id, "")
}

func (s *Store) Income(ctx context.Context, userID, id uuid.UUID) (*ledger.Income, error) {
	return getIncome(ctx, s.db, userID, id, "")
}

func (s *Store) ListExpenses(ctx context.Context, userID uuid.UUID, filter ledger.ListFilter) ([]*ledger.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM expenses WHERE user_id = $1`
	query, args := applyFilter(query, []any{userID}, filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*ledger.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

func (s *Store) ListIncomes(ctx context.Context, userID uuid.UUID, filter ledger.ListFilter) ([]*ledger.Income, error) {
	query := `SELECT ` + selectIncomeColumns + ` FROM incomes WHERE user_id = $1`
	query, args := applyFilter(query, []any{userID}, filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing incomes: %w", err)
	}
	defer rows.Close()

	var incomes []*ledger.Income

	for rows.Next() {
		in, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning income: %w", err)
		}

		incomes = append(incomes, in)
	}

	return incomes, rows.Err()
}

func applyFilter(query string, args []any, filter ledger.ListFilter) (string, []any) {
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}

	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}

	query += " ORDER BY date DESC, created_at DESC"

	return query, args
}

type storeTx struct {
	tx *sql.Tx
}

func (t *storeTx) Commit() error   { return t.tx.Commit() }
func (t *storeTx) Rollback() error { return t.tx.Rollback() }

// --- payment sources ---

func (t *storeTx) BankAccountForUpdate(ctx context.Context, userID, id uuid.UUID) (*source.BankAccount, error) {
	query := `
		SELECT id, user_id, name, balance, created_at, updated_at
		FROM bank_accounts
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`

	var a source.BankAccount
	err := t.tx.QueryRowContext(ctx, query, id, userID).Scan(
		&a.ID, &a.UserID, &a.Name, &a.Balance, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("bank account %s: %w", id, ledger.ErrNotFound)
		}

		return nil, fmt.Errorf("getting bank account: %w", err)
	}

	return &a, nil
}

func (t *storeTx) FundSourceForUpdate(ctx context.Context, userID, id uuid.UUID) (*source.FundSource, error) {
	query := `
		SELECT id, user_id, name, amount, description, created_at, updated_at
		FROM fund_sources
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`

	var f source.FundSource
	err := t.tx.QueryRowContext(ctx, query, id, userID).Scan(
		&f.ID, &f.UserID, &f.Name, &f.Amount, &f.Description, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("fund source %s: %w", id, ledger.ErrNotFound)
		}

		return nil, fmt.Errorf("getting fund source: %w", err)
	}

	return &f, nil
}

func (t *storeTx) ApplyBankBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	query := `UPDATE bank_accounts SET balance = balance + $1, updated_at = NOW() WHERE id = $2`

	if _, err := t.tx.ExecContext(ctx, query, delta, id); err != nil {
		return fmt.Errorf("applying bank balance: %w", err)
	}

	return nil
}

func (t *storeTx) ApplyFundBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	query := `UPDATE fund_sources SET amount = amount + $1, updated_at = NOW() WHERE id = $2`

	if _, err := t.tx.ExecContext(ctx, query, delta, id); err != nil {
		return fmt.Errorf("applying fund balance: %w", err)
	}

	return nil
}

// --- loans ---

func (t *storeTx) CreateLoan(ctx context.Context, l *loan.Loan) error {
	query := `
		INSERT INTO loans (user_id, lender_name, amount, balance_remaining, description,
			status, due_date, is_funding_source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		l.UserID, l.LenderName, l.Amount, l.BalanceRemaining, l.Description,
		l.Status, l.DueDate, l.IsFundingSource,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating loan: %w", err)
	}

	return nil
}

func (t *storeTx) LoanForUpdate(ctx context.Context, userID, id uuid.UUID) (*loan.Loan, error) {
	query := `
		SELECT id, user_id, lender_name, amount, balance_remaining, description,
			status, due_date, is_funding_source, created_at, updated_at
		FROM loans
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`

	var l loan.Loan

	var status string

	err := t.tx.QueryRowContext(ctx, query, id, userID).Scan(
		&l.ID, &l.UserID, &l.LenderName, &l.Amount, &l.BalanceRemaining, &l.Description,
		&status, &l.DueDate, &l.IsFundingSource, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("loan %s: %w", id, ledger.ErrNotFound)
		}

		return nil, fmt.Errorf("getting loan: %w", err)
	}

	l.Status = loan.Status(status)

	var drawn decimal.Decimal
	err = t.tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE loan_id = $1`, id,
	).Scan(&drawn)
	if err != nil {
		return nil, fmt.Errorf("summing loan draws: %w", err)
	}

	l.AvailableBalance = l.Amount.Sub(drawn)

	return &l, nil
}

func (t *storeTx) UpdateLoan(ctx context.Context, l *loan.Loan) error {
	query := `
		UPDATE loans
		SET amount = $1, balance_remaining = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`

	if _, err := t.tx.ExecContext(ctx, query, l.Amount, l.BalanceRemaining, l.Status, l.ID); err != nil {
		return fmt.Errorf("updating loan: %w", err)
	}

	return nil
}

func (t *storeTx) CreateRepayment(ctx context.Context, r *loan.Repayment) error {
	query := `
		INSERT INTO repayments (user_id, loan_id, expense_id, amount, payment_date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		r.UserID, r.LoanID, r.ExpenseID, r.Amount, r.PaymentDate, r.Description,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating repayment: %w", err)
	}

	return nil
}

func (t *storeTx) RepaymentExistsForExpense(ctx context.Context, expenseID uuid.UUID) (bool, error) {
	var exists bool

	err := t.tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM repayments WHERE expense_id = $1)`, expenseID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking repayment link: %w", err)
	}

	return exists, nil
}

// --- budgets ---

func (t *storeTx) BudgetForPeriod(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (*budget.Budget, error) {
	query := `
		SELECT id, user_id, category_id, amount, spent, rollover_amount,
			rollover_enabled, alert_at_90_percent, month, year, created_at, updated_at
		FROM budgets
		WHERE user_id = $1 AND category_id = $2 AND month = $3 AND year = $4
		FOR UPDATE
	`

	b, err := scanBudget(t.tx.QueryRowContext(ctx, query, userID, categoryID, month, year))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	return b, nil
}

func (t *storeTx) AddBudgetSpent(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	query := `UPDATE budgets SET spent = spent + $1, updated_at = NOW() WHERE id = $2`

	if _, err := t.tx.ExecContext(ctx, query, delta, id); err != nil {
		return fmt.Errorf("adding budget spent: %w", err)
	}

	return nil
}

func (t *storeTx) RolloverCandidates(ctx context.Context, userID uuid.UUID, month, year int) ([]*budget.Budget, error) {
	query := `
		SELECT id, user_id, category_id, amount, spent, rollover_amount,
			rollover_enabled, alert_at_90_percent, month, year, created_at, updated_at
		FROM budgets
		WHERE user_id = $1 AND month = $2 AND year = $3 AND rollover_enabled
		FOR UPDATE
	`

	rows, err := t.tx.QueryContext(ctx, query, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("listing rollover candidates: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget

	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	return budgets, rows.Err()
}

func (t *storeTx) CreateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category_id, amount, spent, rollover_amount,
			rollover_enabled, alert_at_90_percent, month, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		b.UserID, b.CategoryID, b.Amount, b.Spent, b.RolloverAmount,
		b.RolloverEnabled, b.AlertAt90Percent, b.Month, b.Year,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating budget: %w", err)
	}

	return nil
}

func (t *storeTx) AddBudgetRollover(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	query := `UPDATE budgets SET rollover_amount = rollover_amount + $1, updated_at = NOW() WHERE id = $2`

	if _, err := t.tx.ExecContext(ctx, query, amount, id); err != nil {
		return fmt.Errorf("adding budget rollover: %w", err)
	}

	return nil
}

func scanBudget(s scanner) (*budget.Budget, error) {
	var b budget.Budget

	if err := s.Scan(
		&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Spent, &b.RolloverAmount,
		&b.RolloverEnabled, &b.AlertAt90Percent, &b.Month, &b.Year, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &b, nil
}

// --- installments ---

func (t *storeTx) InstallmentForUpdate(ctx context.Context, userID, id uuid.UUID) (*installment.Installment, error) {
	query := `
		SELECT id, user_id, category_id, bank_account_id, fund_source_id, item_name,
			total_amount, monthly_amount, total_months, paid_months, start_date,
			status, created_at, updated_at
		FROM installments
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`

	var inst installment.Installment

	var status string

	err := t.tx.QueryRowContext(ctx, query, id, userID).Scan(
		&inst.ID, &inst.UserID, &inst.CategoryID, &inst.BankAccountID, &inst.FundSourceID,
		&inst.ItemName, &inst.TotalAmount, &inst.MonthlyAmount, &inst.TotalMonths,
		&inst.PaidMonths, &inst.StartDate, &status, &inst.CreatedAt, &inst.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("installment %s: %w", id, ledger.ErrNotFound)
		}

		return nil, fmt.Errorf("getting installment: %w", err)
	}

	inst.Status = installment.Status(status)

	return &inst, nil
}

func (t *storeTx) UpdateInstallmentProgress(ctx context.Context, id uuid.UUID, paidMonths int, status installment.Status) error {
	query := `UPDATE installments SET paid_months = $1, status = $2, updated_at = NOW() WHERE id = $3`

	if _, err := t.tx.ExecContext(ctx, query, paidMonths, status, id); err != nil {
		return fmt.Errorf("updating installment progress: %w", err)
	}

	return nil
}

// --- recurring schedules ---

func (t *storeTx) UpdateRecurringSchedule(ctx context.Context, id uuid.UUID, lastProcessed, nextDue time.Time, active bool) error {
	query := `
		UPDATE recurring_transactions
		SET last_processed_date = $1, next_due_date = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
	`

	if _, err := t.tx.ExecContext(ctx, query, lastProcessed, nextDue, active, id); err != nil {
		return fmt.Errorf("updating recurring schedule: %w", err)
	}

	return nil
}

// --- categories ---

func (t *storeTx) CategoryOwned(ctx context.Context, userID, categoryID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1 AND (user_id = $2 OR user_id IS NULL))`

	var ok bool
	if err := t.tx.QueryRowContext(ctx, query, categoryID, userID).Scan(&ok); err != nil {
		return false, fmt.Errorf("checking category: %w", err)
	}

	return ok, nil
}

// --- expenses ---

const selectExpenseColumns = `
	id, user_id, category_id, bank_account_id, fund_source_id, loan_id,
	amount, description, date, created_at, updated_at
`

func scanExpense(s scanner) (*ledger.Expense, error) {
	var e ledger.Expense

	if err := s.Scan(
		&e.ID, &e.UserID, &e.CategoryID, &e.BankAccountID, &e.FundSourceID, &e.LoanID,
		&e.Amount, &e.Description, &e.Date, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &e, nil
}

func getExpense(ctx context.Context, q querier, userID, id uuid.UUID, suffix string) (*ledger.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM expenses WHERE id = $1 AND user_id = $2` + suffix

	e, err := scanExpense(q.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("expense %s: %w", id, ledger.ErrNotFound)
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (t *storeTx) CreateExpense(ctx context.Context, e *ledger.Expense) error {
	query := `
		INSERT INTO expenses (user_id, category_id, bank_account_id, fund_source_id,
			loan_id, amount, description, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		e.UserID, e.CategoryID, e.BankAccountID, e.FundSourceID, e.LoanID,
		e.Amount, e.Description, e.Date,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (t *storeTx) ExpenseForUpdate(ctx context.Context, userID, id uuid.UUID) (*ledger.Expense, error) {
	return getExpense(ctx, t.tx, userID, id, " FOR UPDATE")
}

func (t *storeTx) UpdateExpense(ctx context.Context, e *ledger.Expense) error {
	query := `
		UPDATE expenses
		SET category_id = $1, bank_account_id = $2, fund_source_id = $3, loan_id = $4,
			amount = $5, description = $6, date = $7, updated_at = NOW()
		WHERE id = $8
	`

	_, err := t.tx.ExecContext(ctx, query,
		e.CategoryID, e.BankAccountID, e.FundSourceID, e.LoanID,
		e.Amount, e.Description, e.Date, e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	return nil
}

func (t *storeTx) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	return nil
}

// --- incomes ---

const selectIncomeColumns = `
	id, user_id, category_id, bank_account_id, fund_source_id,
	amount, description, date, created_at, updated_at
`

func scanIncome(s scanner) (*ledger.Income, error) {
	var in ledger.Income

	if err := s.Scan(
		&in.ID, &in.UserID, &in.CategoryID, &in.BankAccountID, &in.FundSourceID,
		&in.Amount, &in.Description, &in.Date, &in.CreatedAt, &in.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &in, nil
}

func getIncome(ctx context.Context, q querier, userID, id uuid.UUID, suffix string) (*ledger.Income, error) {
	query := `SELECT ` + selectIncomeColumns + ` FROM incomes WHERE id = $1 AND user_id = $2` + suffix

	in, err := scanIncome(q.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("income %s: %w", id, ledger.ErrNotFound)
		}

		return nil, fmt.Errorf("getting income: %w", err)
	}

	return in, nil
}

func (t *storeTx) CreateIncome(ctx context.Context, in *ledger.Income) error {
	query := `
		INSERT INTO incomes (user_id, category_id, bank_account_id, fund_source_id,
			amount, description, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		in.UserID, in.CategoryID, in.BankAccountID, in.FundSourceID,
		in.Amount, in.Description, in.Date,
	).Scan(&in.ID, &in.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating income: %w", err)
	}

	return nil
}

func (t *storeTx) IncomeForUpdate(ctx context.Context, userID, id uuid.UUID) (*ledger.Income, error) {
	return getIncome(ctx, t.tx, userID, id, " FOR UPDATE")
}

func (t *storeTx) UpdateIncome(ctx context.Context, in *ledger.Income) error {
	query := `
		UPDATE incomes
		SET category_id = $1, bank_account_id = $2, fund_source_id = $3,
			amount = $4, description = $5, date = $6, updated_at = NOW()
		WHERE id = $7
	`

	_, err := t.tx.ExecContext(ctx, query,
		in.CategoryID, in.BankAccountID, in.FundSourceID,
		in.Amount, in.Description, in.Date, in.ID,
	)
	if err != nil {
		return fmt.Errorf("updating income: %w", err)
	}

	return nil
}

func (t *storeTx) DeleteIncome(ctx context.Context, id uuid.UUID) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM incomes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting income: %w", err)
	}

	return nil
}
