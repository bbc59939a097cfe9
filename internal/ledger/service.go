package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo-app/centavo/internal/budget"
	"github.com/centavo-app/centavo/internal/installment"
	"github.com/centavo-app/centavo/internal/loan"
	"github.com/centavo-app/centavo/internal/recurring"
	"github.com/centavo-app/centavo/internal/source"
)

// Service orchestrates every financial record mutation. Each operation
// runs inside one unit of work: the record write, the balance
// mutation, the budget adjustment and any loan or installment state
// change commit together or not at all.
type Service struct {
	repo Repository
	now  func() time.Time
	log  *slog.Logger
}

// NewService wires the service. A nil clock means time.Now.
func NewService(repo Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{repo: repo, now: now, log: slog.Default()}
}

type CreateExpenseParams struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Source      SourceRef
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// CreateExpense records a spend: persists the expense, debits the
// payment source and bumps the matching budget's spent accumulator.
func (s *Service) CreateExpense(ctx context.Context, params CreateExpenseParams) (*Expense, error) {
	if params.Amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	if _, err := params.Source.Kind(); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning unit of work: %w", err)
	}
	defer tx.Rollback()

	if err := s.checkCategory(ctx, tx, params.UserID, params.CategoryID); err != nil {
		return nil, err
	}

	e := &Expense{
		UserID:        params.UserID,
		CategoryID:    params.CategoryID,
		BankAccountID: params.Source.BankAccountID,
		FundSourceID:  params.Source.FundSourceID,
		LoanID:        params.Source.LoanID,
		Amount:        params.Amount,
		Description:   params.Description,
		Date:          params.Date,
	}
	if err := tx.CreateExpense(ctx, e); err != nil {
		return nil, fmt.Errorf("creating expense: %w", err)
	}

	if err := s.applyExpense(ctx, tx, e); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing expense: %w", err)
	}

	return e, nil
}

type UpdateExpenseParams struct {
	CategoryID  *uuid.UUID
	Source      *SourceRef
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
}

// UpdateExpense reverses the original mutation with the pre-update
// values and re-applies with the post-update ones, exactly as a delete
// followed by a create would. The symmetry keeps balances and budget
// buckets drift-free even when the edit moves the expense to another
// source, category or month.
func (s *Service) UpdateExpense(ctx context.Context, userID, id uuid.UUID, changes UpdateExpenseParams) (*Expense, error) {
	if changes.Amount != nil && changes.Amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning unit of work: %w", err)
	}
	defer tx.Rollback()

	e, err := tx.ExpenseForUpdate(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkNotRepayment(ctx, tx, e); err != nil {
		return nil, err
	}

	if err := s.reverseExpense(ctx, tx, e); err != nil {
		return nil, err
	}

	if changes.CategoryID != nil {
		if err := s.checkCategory(ctx, tx, userID, *changes.CategoryID); err != nil {
			return nil, err
		}

		e.CategoryID = *changes.CategoryID
	}

	if changes.Source != nil {
		e.BankAccountID = changes.Source.BankAccountID
		e.FundSourceID = changes.Source.FundSourceID
		e.LoanID = changes.Source.LoanID
	}

	if changes.Amount != nil {
		e.Amount = *changes.Amount
	}

	if changes.Description != nil {
		e.Description = *changes.Description
	}

	if changes.Date != nil {
		e.Date = *changes.Date
	}

	if _, err := e.SourceRef().Kind(); err != nil {
		return nil, err
	}

	if err := tx.UpdateExpense(ctx, e); err != nil {
		return nil, fmt.Errorf("updating expense: %w", err)
	}

	if err := s.applyExpense(ctx, tx, e); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing expense update: %w", err)
	}

	return e, nil
}

// DeleteExpense restores the source balance and the budget bucket,
// then removes the record.
func (s *Service) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning unit of work: %w", err)
	}
	defer tx.Rollback()

	e, err := tx.ExpenseForUpdate(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.checkNotRepayment(ctx, tx, e); err != nil {
		return err
	}

	if err := s.reverseExpense(ctx, tx, e); err != nil {
		return err
	}

	if err := tx.DeleteExpense(ctx, e.ID); err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing expense deletion: %w", err)
	}

	return nil
}

// applyExpense validates the payment source and applies the spend-side
// mutations for an already-persisted expense row: debit the source,
// bump the budget. Loan draws debit nothing; their available balance
// is derived from the expense rows, so this row being in place already
// means a non-negative available balance proves the draw fits.
func (s *Service) applyExpense(ctx context.Context, tx Tx, e *Expense) error {
	src, err := s.resolveSource(ctx, tx, e.UserID, e.SourceRef())
	if err != nil {
		return err
	}

	switch src.SourceKind() {
	case source.KindLoan:
		if src.CurrentBalance().Sign() < 0 {
			return ErrInsufficientBalance
		}
	default:
		if src.CurrentBalance().LessThan(e.Amount) {
			return ErrInsufficientBalance
		}

		if err := applyBalance(ctx, tx, e.SourceRef(), e.Amount.Neg()); err != nil {
			return err
		}
	}

	return budget.AdjustSpent(ctx, tx, e.UserID, e.CategoryID, e.Date, e.Amount)
}

// reverseExpense undoes the spend-side mutations: credit the source
// back, subtract from the budget bucket the expense originally landed
// in. Loan draws need no balance reversal.
func (s *Service) reverseExpense(ctx context.Context, tx Tx, e *Expense) error {
	if err := applyBalance(ctx, tx, e.SourceRef(), e.Amount); err != nil {
		return err
	}

	return budget.AdjustSpent(ctx, tx, e.UserID, e.CategoryID, e.Date, e.Amount.Neg())
}

type CreateIncomeParams struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Source      SourceRef
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// CreateIncome records money received and credits the destination.
// Incomes never touch budgets.
func (s *Service) CreateIncome(ctx context.Context, params CreateIncomeParams) (*Income, error) {
	if params.Amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	if err := validateBankOrFundRef(params.Source); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning unit of work: %w", err)
	}
	defer tx.Rollback()

	if err := s.checkCategory(ctx, tx, params.UserID, params.CategoryID); err != nil {
		return nil, err
	}

	in := &Income{
		UserID:        params.UserID,
		CategoryID:    params.CategoryID,
		BankAccountID: params.Source.BankAccountID,
		FundSourceID:  params.Source.FundSourceID,
		Amount:        params.Amount,
		Description:   params.Description,
		Date:          params.Date,
	}
	if err := tx.CreateIncome(ctx, in); err != nil {
		return nil, fmt.Errorf("creating income: %w", err)
	}

	if _, err := s.resolveSource(ctx, tx, in.UserID, in.SourceRef()); err != nil {
		return nil, err
	}

	if err := applyBalance(ctx, tx, in.SourceRef(), in.Amount); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing income: %w", err)
	}

	return in, nil
}

type UpdateIncomeParams struct {
	CategoryID  *uuid.UUID
	Source      *SourceRef
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
}

// UpdateIncome mirrors UpdateExpense with the sign flipped: debit the
// old destination by the old amount, credit the new destination with
// the new one.
func (s *Service) UpdateIncome(ctx context.Context, userID, id uuid.UUID, changes UpdateIncomeParams) (*Income, error) {
	if changes.Amount != nil && changes.Amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning unit of work: %w", err)
	}
	defer tx.Rollback()

	in, err := tx.IncomeForUpdate(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := applyBalance(ctx, tx, in.SourceRef(), in.Amount.Neg()); err != nil {
		return nil, err
	}

	if changes.CategoryID != nil {
		if err := s.checkCategory(ctx, tx, userID, *changes.CategoryID); err != nil {
			return nil, err
		}

		in.CategoryID = *changes.CategoryID
	}

	if changes.Source != nil {
		if err := validateBankOrFundRef(*changes.Source); err != nil {
			return nil, err
		}

		in.BankAccountID = changes.Source.BankAccountID
		in.FundSourceID = changes.Source.FundSourceID
	}

	if changes.Amount != nil {
		in.Amount = *changes.Amount
	}

	if changes.Description != nil {
		in.Description = *changes.Description
	}

	if changes.Date != nil {
		in.Date = *changes.Date
	}

	if err := tx.UpdateIncome(ctx, in); err != nil {
		return nil, fmt.Errorf("updating income: %w", err)
	}

	if _, err := s.resolveSource(ctx, tx, in.UserID, in.SourceRef()); err != nil {
		return nil, err
	}

	if err := applyBalance(ctx, tx, in.SourceRef(), in.Amount); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing income update: %w", err)
	}

	return in, nil
}

// DeleteIncome debits the destination by the recorded amount and
// removes the record.
func (s *Service) DeleteIncome(ctx context.Context, userID, id uuid.UUID) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning unit of work: %w", err)
	}
	defer tx.Rollback()

	in, err := tx.IncomeForUpdate(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := applyBalance(ctx, tx, in.SourceRef(), in.Amount.Neg()); err != nil {
		return err
	}

	if err := tx.DeleteIncome(ctx, in.ID); err != nil {
		return fmt.Errorf("deleting income: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing income deletion: %w", err)
	}

	return nil
}

// PayInstallment pays off one or more months of an installment plan:
// a single expense covering every month paid, one source debit, one
// budget bump, and the plan's progress advanced, completing it when
// the last month is paid.
func (s *Service) PayInstallment(ctx context.Context, userID, installmentID uuid.UUID, monthsToPay int) (*Expense, error) {
	if monthsToPay < 1 {
		return nil, ErrInvalidAmount
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning unit of work: %w", err)
	}
	defer tx.Rollback()

	inst, err := tx.InstallmentForUpdate(ctx, userID, installmentID)
	if err != nil {
		return nil, err
	}

	if inst.Status == installment.StatusCompleted {
		return nil, fmt.Errorf("installment already completed: %w", ErrInvalidState)
	}

	if monthsToPay > inst.RemainingMonths() {
		return nil, fmt.Errorf("cannot pay more than %d remaining months: %w", inst.RemainingMonths(), ErrInvalidState)
	}

	total := inst.MonthlyAmount.Mul(decimal.NewFromInt(int64(monthsToPay)))

	e := &Expense{
		UserID:        userID,
		CategoryID:    inst.CategoryID,
		BankAccountID: inst.BankAccountID,
		FundSourceID:  inst.FundSourceID,
		Amount:        total,
		Description:   fmt.Sprintf("Installment: %s (%d months)", inst.ItemName, monthsToPay),
		Date:          s.now(),
	}
	if err := tx.CreateExpense(ctx, e); err != nil {
		return nil, fmt.Errorf("creating installment expense: %w", err)
	}

	// The source is optional on installment plans; without one the
	// payment is recorded but nothing is debited.
	if !e.SourceRef().Empty() {
		src, err := s.resolveSource(ctx, tx, userID, e.SourceRef())
		if err != nil {
			return nil, err
		}

		if src.CurrentBalance().LessThan(total) {
			return nil, ErrInsufficientBalance
		}

		if err := applyBalance(ctx, tx, e.SourceRef(), total.Neg()); err != nil {
			return nil, err
		}
	}

	if err := budget.AdjustSpent(ctx, tx, userID, inst.CategoryID, e.Date, total); err != nil {
		return nil, err
	}

	inst.RecordPayment(monthsToPay)

	if err := tx.UpdateInstallmentProgress(ctx, inst.ID, inst.PaidMonths, inst.Status); err != nil {
		return nil, fmt.Errorf("updating installment progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing installment payment: %w", err)
	}

	return e, nil
}

type CreateLoanParams struct {
	UserID          uuid.UUID
	LenderName      string
	Amount          decimal.Decimal
	Description     string
	DueDate         *time.Time
	IsFundingSource bool
}

// CreateLoan records borrowed money. The repayment balance starts at
// the full principal and the status at unpaid; nothing else moves until
// the loan is drawn against or repaid.
func (s *Service) CreateLoan(ctx context.Context, params CreateLoanParams) (*loan.Loan, error) {
	if params.Amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning unit of work: %w", err)
	}
	defer tx.Rollback()

	l := &loan.Loan{
		UserID:           params.UserID,
		LenderName:       params.LenderName,
		Amount:           params.Amount,
		BalanceRemaining: params.Amount,
		Description:      params.Description,
		Status:           loan.StatusUnpaid,
		DueDate:          params.DueDate,
		IsFundingSource:  params.IsFundingSource,
		AvailableBalance: params.Amount,
	}
	if err := tx.CreateLoan(ctx, l); err != nil {
		return nil, fmt.Errorf("creating loan: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing loan: %w", err)
	}

	return l, nil
}

type RepayLoanParams struct {
	UserID      uuid.UUID
	LoanID      uuid.UUID
	Amount      decimal.Decimal
	Source      SourceRef
	CategoryID  uuid.UUID
	Date        time.Time
	Description string
}

// RepayLoan pays down a loan: an expense carrying the loan reference,
// a debit of the chosen funding source, a budget bump, the loan's
// repayment balance and status updated, and an immutable repayment log
// row. The loan itself is never debited; only its repayment balance
// shrinks.
func (s *Service) RepayLoan(ctx context.Context, params RepayLoanParams) (*loan.Loan, *Expense, error) {
	if params.Amount.Sign() <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	if !params.Source.Empty() {
		if err := validateBankOrFundRef(params.Source); err != nil {
			return nil, nil, err
		}
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning unit of work: %w", err)
	}
	defer tx.Rollback()

	l, err := tx.LoanForUpdate(ctx, params.UserID, params.LoanID)
	if err != nil {
		return nil, nil, err
	}

	if params.Amount.GreaterThan(l.BalanceRemaining) {
		return nil, nil, fmt.Errorf("repayment exceeds remaining balance: %w", ErrInvalidState)
	}

	if err := s.checkCategory(ctx, tx, params.UserID, params.CategoryID); err != nil {
		return nil, nil, err
	}

	description := params.Description
	if description == "" {
		description = fmt.Sprintf("Repayment to %s", l.LenderName)
	}

	e := &Expense{
		UserID:        params.UserID,
		CategoryID:    params.CategoryID,
		BankAccountID: params.Source.BankAccountID,
		FundSourceID:  params.Source.FundSourceID,
		LoanID:        &l.ID,
		Amount:        params.Amount,
		Description:   description,
		Date:          params.Date,
	}
	if err := tx.CreateExpense(ctx, e); err != nil {
		return nil, nil, fmt.Errorf("creating repayment expense: %w", err)
	}

	if !params.Source.Empty() {
		src, err := s.resolveSource(ctx, tx, params.UserID, params.Source)
		if err != nil {
			return nil, nil, err
		}

		if src.CurrentBalance().LessThan(params.Amount) {
			return nil, nil, ErrInsufficientBalance
		}

		if err := applyBalance(ctx, tx, params.Source, params.Amount.Neg()); err != nil {
			return nil, nil, err
		}
	}

	if err := budget.AdjustSpent(ctx, tx, params.UserID, params.CategoryID, params.Date, params.Amount); err != nil {
		return nil, nil, err
	}

	l.ApplyRepayment(params.Amount)

	if err := tx.UpdateLoan(ctx, l); err != nil {
		return nil, nil, fmt.Errorf("updating loan: %w", err)
	}

	r := &loan.Repayment{
		UserID:      params.UserID,
		LoanID:      l.ID,
		ExpenseID:   e.ID,
		Amount:      params.Amount,
		PaymentDate: params.Date,
		Description: params.Description,
	}
	if err := tx.CreateRepayment(ctx, r); err != nil {
		return nil, nil, fmt.Errorf("logging repayment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("committing repayment: %w", err)
	}

	return l, e, nil
}

// UpdateLoanAmount edits a loan's principal, preserving the amount
// already paid. A stored balance above the principal is recovered
// defensively and logged as an invariant violation.
func (s *Service) UpdateLoanAmount(ctx context.Context, userID, loanID uuid.UUID, newAmount decimal.Decimal) (*loan.Loan, error) {
	if newAmount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning unit of work: %w", err)
	}
	defer tx.Rollback()

	l, err := tx.LoanForUpdate(ctx, userID, loanID)
	if err != nil {
		return nil, err
	}

	if corrupted := l.RecomputeOnAmountChange(newAmount); corrupted {
		s.log.Warn("loan balance exceeded principal, resetting",
			"loan_id", l.ID, "user_id", userID)
	}

	if err := tx.UpdateLoan(ctx, l); err != nil {
		return nil, fmt.Errorf("updating loan: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing loan update: %w", err)
	}

	return l, nil
}

// MaterializeRecurring turns one due recurring transaction into a
// persisted expense and advances its schedule in the same unit of
// work. On failure nothing moves: the schedule stays due and the next
// run retries it.
func (s *Service) MaterializeRecurring(ctx context.Context, rt *recurring.Transaction) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning unit of work: %w", err)
	}
	defer tx.Rollback()

	e := &Expense{
		UserID:        rt.UserID,
		CategoryID:    rt.CategoryID,
		BankAccountID: rt.BankAccountID,
		FundSourceID:  rt.FundSourceID,
		Amount:        rt.Amount,
		Description:   rt.ExpenseDescription(),
		Date:          rt.NextDueDate,
	}
	if err := tx.CreateExpense(ctx, e); err != nil {
		return fmt.Errorf("creating recurring expense: %w", err)
	}

	if err := s.applyExpense(ctx, tx, e); err != nil {
		return err
	}

	lastProcessed, nextDue, active := rt.Advance()

	if err := tx.UpdateRecurringSchedule(ctx, rt.ID, lastProcessed, nextDue, active); err != nil {
		return fmt.Errorf("advancing schedule: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing recurring expense: %w", err)
	}

	rt.LastProcessedDate = &lastProcessed
	rt.NextDueDate = nextDue
	rt.IsActive = active

	return nil
}

// ProcessMonthRollover carries unspent rollover-enabled budgets from
// last month into the current one. The caller must guarantee
// at-most-once invocation per month transition; this operation is not
// idempotent.
func (s *Service) ProcessMonthRollover(ctx context.Context, userID uuid.UUID) (int, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning unit of work: %w", err)
	}
	defer tx.Rollback()

	now := s.now()

	carried, err := budget.ProcessRollover(ctx, tx, userID, int(now.Month()), now.Year())
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rollover: %w", err)
	}

	return carried, nil
}

func (s *Service) Expense(ctx context.Context, userID, id uuid.UUID) (*Expense, error) {
	return s.repo.Expense(ctx, userID, id)
}

func (s *Service) Income(ctx context.Context, userID, id uuid.UUID) (*Income, error) {
	return s.repo.Income(ctx, userID, id)
}

func (s *Service) ListExpenses(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, userID, filter)
}

func (s *Service) ListIncomes(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Income, error) {
	return s.repo.ListIncomes(ctx, userID, filter)
}

// checkNotRepayment rejects mutation of an expense a repayment log row
// references. The log is immutable; editing the expense behind it would
// desync the recorded amount, and a sourceless repayment expense would
// otherwise be reclassified as a loan draw.
func (s *Service) checkNotRepayment(ctx context.Context, tx Tx, e *Expense) error {
	if e.LoanID == nil {
		return nil
	}

	linked, err := tx.RepaymentExistsForExpense(ctx, e.ID)
	if err != nil {
		return fmt.Errorf("checking repayment link: %w", err)
	}

	if linked {
		return fmt.Errorf("expense records a loan repayment: %w", ErrInvalidState)
	}

	return nil
}

func (s *Service) checkCategory(ctx context.Context, tx Tx, userID, categoryID uuid.UUID) error {
	ok, err := tx.CategoryOwned(ctx, userID, categoryID)
	if err != nil {
		return fmt.Errorf("checking category: %w", err)
	}

	if !ok {
		return fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
	}

	return nil
}

// validateBankOrFundRef accepts bank or fund references only; loans
// cannot receive incomes or directly fund repayments.
func validateBankOrFundRef(ref SourceRef) error {
	if ref.LoanID != nil {
		return ErrInvalidPaymentSource
	}

	if _, err := ref.Kind(); err != nil {
		return err
	}

	return nil
}
