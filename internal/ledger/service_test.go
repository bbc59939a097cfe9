package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/centavo-app/centavo/internal/budget"
	"github.com/centavo-app/centavo/internal/installment"
	"github.com/centavo-app/centavo/internal/ledger"
	"github.com/centavo-app/centavo/internal/loan"
	"github.com/centavo-app/centavo/internal/recurring"
	"github.com/centavo-app/centavo/internal/source"
)

type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is decimal " + m.want.String()
}

func decEq(v int64) gomock.Matcher {
	return decimalMatcher{want: decimal.NewFromInt(v)}
}

func idPtr(id uuid.UUID) *uuid.UUID {
	return &id
}

func TestService_CreateExpense(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()
	accountID := uuid.New()
	budgetID := uuid.New()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		params    ledger.CreateExpenseParams
		setupMock func(repo *ledger.MockRepository, tx *ledger.MockTx)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "DebitsAccountAndBumpsBudget",
			params: ledger.CreateExpenseParams{
				UserID:      userID,
				CategoryID:  categoryID,
				Source:      ledger.SourceRef{BankAccountID: idPtr(accountID)},
				Amount:      decimal.NewFromInt(100),
				Description: "Groceries",
				Date:        date,
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().CategoryOwned(gomock.Any(), userID, categoryID).Return(true, nil)
				tx.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *ledger.Expense) error {
						e.ID = uuid.New()
						e.CreatedAt = time.Now()
						return nil
					})
				tx.EXPECT().
					BankAccountForUpdate(gomock.Any(), userID, accountID).
					Return(&source.BankAccount{ID: accountID, Balance: decimal.NewFromInt(500)}, nil)
				tx.EXPECT().ApplyBankBalance(gomock.Any(), accountID, decEq(-100)).Return(nil)
				tx.EXPECT().
					BudgetForPeriod(gomock.Any(), userID, categoryID, 1, 2026).
					Return(&budget.Budget{ID: budgetID}, nil)
				tx.EXPECT().AddBudgetSpent(gomock.Any(), budgetID, decEq(100)).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name: "NoBudgetForMonthIsNotAnError",
			params: ledger.CreateExpenseParams{
				UserID:     userID,
				CategoryID: categoryID,
				Source:     ledger.SourceRef{BankAccountID: idPtr(accountID)},
				Amount:     decimal.NewFromInt(100),
				Date:       date,
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().CategoryOwned(gomock.Any(), userID, categoryID).Return(true, nil)
				tx.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().
					BankAccountForUpdate(gomock.Any(), userID, accountID).
					Return(&source.BankAccount{ID: accountID, Balance: decimal.NewFromInt(500)}, nil)
				tx.EXPECT().ApplyBankBalance(gomock.Any(), accountID, decEq(-100)).Return(nil)
				tx.EXPECT().
					BudgetForPeriod(gomock.Any(), userID, categoryID, 1, 2026).
					Return(nil, nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name: "InsufficientBalanceRollsBack",
			params: ledger.CreateExpenseParams{
				UserID:     userID,
				CategoryID: categoryID,
				Source:     ledger.SourceRef{BankAccountID: idPtr(accountID)},
				Amount:     decimal.NewFromInt(100),
				Date:       date,
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().CategoryOwned(gomock.Any(), userID, categoryID).Return(true, nil)
				tx.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().
					BankAccountForUpdate(gomock.Any(), userID, accountID).
					Return(&source.BankAccount{ID: accountID, Balance: decimal.NewFromInt(50)}, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: ledger.ErrInsufficientBalance,
		},
		{
			name: "ZeroAmountRejected",
			params: ledger.CreateExpenseParams{
				UserID:     userID,
				CategoryID: categoryID,
				Source:     ledger.SourceRef{BankAccountID: idPtr(accountID)},
				Amount:     decimal.Zero,
				Date:       date,
			},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name: "TwoSourcesRejected",
			params: ledger.CreateExpenseParams{
				UserID:     userID,
				CategoryID: categoryID,
				Source: ledger.SourceRef{
					BankAccountID: idPtr(accountID),
					FundSourceID:  idPtr(uuid.New()),
				},
				Amount: decimal.NewFromInt(100),
				Date:   date,
			},
			wantErr: ledger.ErrInvalidPaymentSource,
		},
		{
			name: "UnknownCategoryRejected",
			params: ledger.CreateExpenseParams{
				UserID:     userID,
				CategoryID: categoryID,
				Source:     ledger.SourceRef{BankAccountID: idPtr(accountID)},
				Amount:     decimal.NewFromInt(100),
				Date:       date,
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().CategoryOwned(gomock.Any(), userID, categoryID).Return(false, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: ledger.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			tx := ledger.NewMockTx(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			svc := ledger.NewService(repo, nil)
			got, err := svc.CreateExpense(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.params.UserID, got.UserID)
		})
	}
}

func TestService_CreateExpense_LoanDraw(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()
	loanID := uuid.New()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	params := ledger.CreateExpenseParams{
		UserID:     userID,
		CategoryID: categoryID,
		Source:     ledger.SourceRef{LoanID: idPtr(loanID)},
		Amount:     decimal.NewFromInt(700),
		Date:       date,
	}

	type testCase struct {
		name    string
		loan    *loan.Loan
		wantErr error
	}

	// LoanForUpdate sees the expense row already inserted, so the
	// available balance it reports includes this draw.
	tests := []testCase{
		{
			name: "DrawWithinAvailableBalance",
			loan: &loan.Loan{
				ID:               loanID,
				IsFundingSource:  true,
				Amount:           decimal.NewFromInt(1000),
				AvailableBalance: decimal.Zero,
			},
		},
		{
			name: "DrawExceedingAvailableBalance",
			loan: &loan.Loan{
				ID:               loanID,
				IsFundingSource:  true,
				Amount:           decimal.NewFromInt(1000),
				AvailableBalance: decimal.NewFromInt(-1),
			},
			wantErr: ledger.ErrInsufficientBalance,
		},
		{
			name: "NonFundingLoanRejected",
			loan: &loan.Loan{
				ID:               loanID,
				IsFundingSource:  false,
				Amount:           decimal.NewFromInt(1000),
				AvailableBalance: decimal.Zero,
			},
			wantErr: ledger.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			tx := ledger.NewMockTx(ctrl)

			repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
			tx.EXPECT().CategoryOwned(gomock.Any(), userID, categoryID).Return(true, nil)
			tx.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)
			tx.EXPECT().LoanForUpdate(gomock.Any(), userID, loanID).Return(tt.loan, nil)
			tx.EXPECT().Rollback().Return(nil)

			if tt.wantErr == nil {
				// A loan draw writes no balance, only the budget bucket.
				tx.EXPECT().
					BudgetForPeriod(gomock.Any(), userID, categoryID, 1, 2026).
					Return(nil, nil)
				tx.EXPECT().Commit().Return(nil)
			}

			svc := ledger.NewService(repo, nil)
			got, err := svc.CreateExpense(context.Background(), params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
		})
	}
}

func TestService_UpdateExpense_MovesBudgetMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	categoryID := uuid.New()
	accountID := uuid.New()
	expenseID := uuid.New()
	janBudgetID := uuid.New()
	febBudgetID := uuid.New()

	janDate := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	febDate := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)

	existing := &ledger.Expense{
		ID:            expenseID,
		UserID:        userID,
		CategoryID:    categoryID,
		BankAccountID: idPtr(accountID),
		Amount:        decimal.NewFromInt(100),
		Date:          janDate,
	}

	repo := ledger.NewMockRepository(ctrl)
	tx := ledger.NewMockTx(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().ExpenseForUpdate(gomock.Any(), userID, expenseID).Return(existing, nil)

	// Reversal credits the account and drains the January bucket.
	tx.EXPECT().ApplyBankBalance(gomock.Any(), accountID, decEq(100)).Return(nil)
	tx.EXPECT().
		BudgetForPeriod(gomock.Any(), userID, categoryID, 1, 2026).
		Return(&budget.Budget{ID: janBudgetID}, nil)
	tx.EXPECT().AddBudgetSpent(gomock.Any(), janBudgetID, decEq(-100)).Return(nil)

	tx.EXPECT().UpdateExpense(gomock.Any(), gomock.Any()).Return(nil)

	// Re-apply debits the new amount and fills the February bucket.
	tx.EXPECT().
		BankAccountForUpdate(gomock.Any(), userID, accountID).
		Return(&source.BankAccount{ID: accountID, Balance: decimal.NewFromInt(500)}, nil)
	tx.EXPECT().ApplyBankBalance(gomock.Any(), accountID, decEq(-150)).Return(nil)
	tx.EXPECT().
		BudgetForPeriod(gomock.Any(), userID, categoryID, 2, 2026).
		Return(&budget.Budget{ID: febBudgetID}, nil)
	tx.EXPECT().AddBudgetSpent(gomock.Any(), febBudgetID, decEq(150)).Return(nil)

	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	newAmount := decimal.NewFromInt(150)
	svc := ledger.NewService(repo, nil)

	got, err := svc.UpdateExpense(context.Background(), userID, expenseID, ledger.UpdateExpenseParams{
		Amount: &newAmount,
		Date:   &febDate,
	})
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(newAmount))
	assert.Equal(t, febDate, got.Date)
}

func TestService_DeleteExpense_RestoresBalanceAndBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	categoryID := uuid.New()
	accountID := uuid.New()
	expenseID := uuid.New()
	budgetID := uuid.New()
	date := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	existing := &ledger.Expense{
		ID:            expenseID,
		UserID:        userID,
		CategoryID:    categoryID,
		BankAccountID: idPtr(accountID),
		Amount:        decimal.NewFromInt(100),
		Date:          date,
	}

	repo := ledger.NewMockRepository(ctrl)
	tx := ledger.NewMockTx(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().ExpenseForUpdate(gomock.Any(), userID, expenseID).Return(existing, nil)
	tx.EXPECT().ApplyBankBalance(gomock.Any(), accountID, decEq(100)).Return(nil)
	tx.EXPECT().
		BudgetForPeriod(gomock.Any(), userID, categoryID, 1, 2026).
		Return(&budget.Budget{ID: budgetID}, nil)
	tx.EXPECT().AddBudgetSpent(gomock.Any(), budgetID, decEq(-100)).Return(nil)
	tx.EXPECT().DeleteExpense(gomock.Any(), expenseID).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	svc := ledger.NewService(repo, nil)
	require.NoError(t, svc.DeleteExpense(context.Background(), userID, expenseID))
}

// Expenses referenced by a repayment log row are frozen: the log is
// immutable, so neither an edit (which would reclassify a sourceless
// repayment expense as a loan draw) nor a delete may touch them.
func TestService_RepaymentLinkedExpenseIsFrozen(t *testing.T) {
	userID := uuid.New()
	loanID := uuid.New()
	expenseID := uuid.New()

	linked := func() *ledger.Expense {
		return &ledger.Expense{
			ID:         expenseID,
			UserID:     userID,
			CategoryID: uuid.New(),
			LoanID:     idPtr(loanID),
			Amount:     decimal.NewFromInt(100),
			Date:       time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("UpdateRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().ExpenseForUpdate(gomock.Any(), userID, expenseID).Return(linked(), nil)
		tx.EXPECT().RepaymentExistsForExpense(gomock.Any(), expenseID).Return(true, nil)
		tx.EXPECT().Rollback().Return(nil)

		amount := decimal.NewFromInt(950)

		svc := ledger.NewService(repo, nil)
		_, err := svc.UpdateExpense(context.Background(), userID, expenseID, ledger.UpdateExpenseParams{
			Amount: &amount,
		})
		assert.ErrorIs(t, err, ledger.ErrInvalidState)
	})

	t.Run("DeleteRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().ExpenseForUpdate(gomock.Any(), userID, expenseID).Return(linked(), nil)
		tx.EXPECT().RepaymentExistsForExpense(gomock.Any(), expenseID).Return(true, nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, nil)
		err := svc.DeleteExpense(context.Background(), userID, expenseID)
		assert.ErrorIs(t, err, ledger.ErrInvalidState)
	})

	// A plain loan draw carries loan_id without a repayment row and
	// stays deletable.
	t.Run("UnlinkedLoanDrawStillDeletable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		draw := linked()

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().ExpenseForUpdate(gomock.Any(), userID, expenseID).Return(draw, nil)
		tx.EXPECT().RepaymentExistsForExpense(gomock.Any(), expenseID).Return(false, nil)
		tx.EXPECT().
			BudgetForPeriod(gomock.Any(), userID, draw.CategoryID, 1, 2026).
			Return(nil, nil)
		tx.EXPECT().DeleteExpense(gomock.Any(), expenseID).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, nil)
		require.NoError(t, svc.DeleteExpense(context.Background(), userID, expenseID))
	})
}

func TestService_CreateIncome(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()
	accountID := uuid.New()
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		params    ledger.CreateIncomeParams
		setupMock func(repo *ledger.MockRepository, tx *ledger.MockTx)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "CreditsAccount",
			params: ledger.CreateIncomeParams{
				UserID:      userID,
				CategoryID:  categoryID,
				Source:      ledger.SourceRef{BankAccountID: idPtr(accountID)},
				Amount:      decimal.NewFromInt(2500),
				Description: "Salary",
				Date:        date,
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().CategoryOwned(gomock.Any(), userID, categoryID).Return(true, nil)
				tx.EXPECT().CreateIncome(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().
					BankAccountForUpdate(gomock.Any(), userID, accountID).
					Return(&source.BankAccount{ID: accountID, Balance: decimal.NewFromInt(500)}, nil)
				tx.EXPECT().ApplyBankBalance(gomock.Any(), accountID, decEq(2500)).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name: "LoanDestinationRejected",
			params: ledger.CreateIncomeParams{
				UserID:     userID,
				CategoryID: categoryID,
				Source:     ledger.SourceRef{LoanID: idPtr(uuid.New())},
				Amount:     decimal.NewFromInt(2500),
				Date:       date,
			},
			wantErr: ledger.ErrInvalidPaymentSource,
		},
		{
			name: "NegativeAmountRejected",
			params: ledger.CreateIncomeParams{
				UserID:     userID,
				CategoryID: categoryID,
				Source:     ledger.SourceRef{BankAccountID: idPtr(accountID)},
				Amount:     decimal.NewFromInt(-5),
				Date:       date,
			},
			wantErr: ledger.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			tx := ledger.NewMockTx(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			svc := ledger.NewService(repo, nil)
			got, err := svc.CreateIncome(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
		})
	}
}

func TestService_PayInstallment(t *testing.T) {
	userID := uuid.New()
	installmentID := uuid.New()
	categoryID := uuid.New()
	accountID := uuid.New()
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	newPlan := func(paid int, status installment.Status) *installment.Installment {
		return &installment.Installment{
			ID:            installmentID,
			UserID:        userID,
			CategoryID:    categoryID,
			BankAccountID: idPtr(accountID),
			ItemName:      "Laptop",
			MonthlyAmount: decimal.NewFromInt(1500),
			TotalMonths:   12,
			PaidMonths:    paid,
			Status:        status,
		}
	}

	t.Run("PaysTwoMonths", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().
			InstallmentForUpdate(gomock.Any(), userID, installmentID).
			Return(newPlan(5, installment.StatusOngoing), nil)
		tx.EXPECT().
			CreateExpense(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *ledger.Expense) error {
				assert.Equal(t, "Installment: Laptop (2 months)", e.Description)
				assert.Equal(t, now, e.Date)
				assert.True(t, e.Amount.Equal(decimal.NewFromInt(3000)))
				return nil
			})
		tx.EXPECT().
			BankAccountForUpdate(gomock.Any(), userID, accountID).
			Return(&source.BankAccount{ID: accountID, Balance: decimal.NewFromInt(5000)}, nil)
		tx.EXPECT().ApplyBankBalance(gomock.Any(), accountID, decEq(-3000)).Return(nil)
		tx.EXPECT().
			BudgetForPeriod(gomock.Any(), userID, categoryID, 3, 2026).
			Return(nil, nil)
		tx.EXPECT().
			UpdateInstallmentProgress(gomock.Any(), installmentID, 7, installment.StatusOngoing).
			Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, clock)
		e, err := svc.PayInstallment(context.Background(), userID, installmentID, 2)
		require.NoError(t, err)
		assert.True(t, e.Amount.Equal(decimal.NewFromInt(3000)))
	})

	t.Run("FinalPaymentCompletesPlan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().
			InstallmentForUpdate(gomock.Any(), userID, installmentID).
			Return(newPlan(11, installment.StatusOngoing), nil)
		tx.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().
			BankAccountForUpdate(gomock.Any(), userID, accountID).
			Return(&source.BankAccount{ID: accountID, Balance: decimal.NewFromInt(5000)}, nil)
		tx.EXPECT().ApplyBankBalance(gomock.Any(), accountID, decEq(-1500)).Return(nil)
		tx.EXPECT().
			BudgetForPeriod(gomock.Any(), userID, categoryID, 3, 2026).
			Return(nil, nil)
		tx.EXPECT().
			UpdateInstallmentProgress(gomock.Any(), installmentID, 12, installment.StatusCompleted).
			Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, clock)
		_, err := svc.PayInstallment(context.Background(), userID, installmentID, 1)
		require.NoError(t, err)
	})

	t.Run("CompletedPlanRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().
			InstallmentForUpdate(gomock.Any(), userID, installmentID).
			Return(newPlan(12, installment.StatusCompleted), nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, clock)
		_, err := svc.PayInstallment(context.Background(), userID, installmentID, 1)
		assert.ErrorIs(t, err, ledger.ErrInvalidState)
	})

	t.Run("OverpayingRemainingMonthsRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().
			InstallmentForUpdate(gomock.Any(), userID, installmentID).
			Return(newPlan(10, installment.StatusOngoing), nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, clock)
		_, err := svc.PayInstallment(context.Background(), userID, installmentID, 3)
		assert.ErrorIs(t, err, ledger.ErrInvalidState)
	})

	t.Run("InsufficientSourceRollsBack", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().
			InstallmentForUpdate(gomock.Any(), userID, installmentID).
			Return(newPlan(5, installment.StatusOngoing), nil)
		tx.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().
			BankAccountForUpdate(gomock.Any(), userID, accountID).
			Return(&source.BankAccount{ID: accountID, Balance: decimal.NewFromInt(1000)}, nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, clock)
		_, err := svc.PayInstallment(context.Background(), userID, installmentID, 1)
		assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)
	})
}

func TestService_RepayLoan(t *testing.T) {
	userID := uuid.New()
	loanID := uuid.New()
	categoryID := uuid.New()
	accountID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	newLoan := func(amount, remaining int64, status loan.Status) *loan.Loan {
		return &loan.Loan{
			ID:               loanID,
			UserID:           userID,
			LenderName:       "Alex",
			Amount:           decimal.NewFromInt(amount),
			BalanceRemaining: decimal.NewFromInt(remaining),
			Status:           status,
		}
	}

	repay := func(t *testing.T, l *loan.Loan, amount int64) (*loan.Loan, error) {
		t.Helper()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().LoanForUpdate(gomock.Any(), userID, loanID).Return(l, nil)
		tx.EXPECT().CategoryOwned(gomock.Any(), userID, categoryID).Return(true, nil)
		tx.EXPECT().
			CreateExpense(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *ledger.Expense) error {
				assert.Equal(t, &loanID, e.LoanID)
				assert.Equal(t, "Repayment to Alex", e.Description)
				e.ID = uuid.New()
				return nil
			})
		tx.EXPECT().
			BankAccountForUpdate(gomock.Any(), userID, accountID).
			Return(&source.BankAccount{ID: accountID, Balance: decimal.NewFromInt(10000)}, nil)
		tx.EXPECT().ApplyBankBalance(gomock.Any(), accountID, decEq(-amount)).Return(nil)
		tx.EXPECT().
			BudgetForPeriod(gomock.Any(), userID, categoryID, 3, 2026).
			Return(nil, nil)
		tx.EXPECT().UpdateLoan(gomock.Any(), l).Return(nil)
		tx.EXPECT().
			CreateRepayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *loan.Repayment) error {
				assert.Equal(t, loanID, r.LoanID)
				assert.NotEqual(t, uuid.Nil, r.ExpenseID)
				assert.True(t, r.Amount.Equal(decimal.NewFromInt(amount)))
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, nil)
		got, _, err := svc.RepayLoan(context.Background(), ledger.RepayLoanParams{
			UserID:     userID,
			LoanID:     loanID,
			Amount:     decimal.NewFromInt(amount),
			Source:     ledger.SourceRef{BankAccountID: idPtr(accountID)},
			CategoryID: categoryID,
			Date:       date,
		})

		return got, err
	}

	t.Run("FullRepaymentMarksPaid", func(t *testing.T) {
		got, err := repay(t, newLoan(500, 500, loan.StatusUnpaid), 500)
		require.NoError(t, err)
		assert.Equal(t, loan.StatusPaid, got.Status)
		assert.True(t, got.BalanceRemaining.IsZero())
	})

	t.Run("PartialRepaymentMarksPartiallyPaid", func(t *testing.T) {
		got, err := repay(t, newLoan(500, 500, loan.StatusUnpaid), 200)
		require.NoError(t, err)
		assert.Equal(t, loan.StatusPartiallyPaid, got.Status)
		assert.True(t, got.BalanceRemaining.Equal(decimal.NewFromInt(300)))
	})

	t.Run("FinalPartialRepaymentMarksPaid", func(t *testing.T) {
		got, err := repay(t, newLoan(500, 300, loan.StatusPartiallyPaid), 300)
		require.NoError(t, err)
		assert.Equal(t, loan.StatusPaid, got.Status)
	})

	t.Run("OverpaymentRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().
			LoanForUpdate(gomock.Any(), userID, loanID).
			Return(newLoan(500, 300, loan.StatusPartiallyPaid), nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, nil)
		_, _, err := svc.RepayLoan(context.Background(), ledger.RepayLoanParams{
			UserID:     userID,
			LoanID:     loanID,
			Amount:     decimal.NewFromInt(301),
			Source:     ledger.SourceRef{BankAccountID: idPtr(accountID)},
			CategoryID: categoryID,
			Date:       date,
		})
		assert.ErrorIs(t, err, ledger.ErrInvalidState)
	})

	t.Run("InsufficientFundingSourceRollsBack", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().
			LoanForUpdate(gomock.Any(), userID, loanID).
			Return(newLoan(500, 500, loan.StatusUnpaid), nil)
		tx.EXPECT().CategoryOwned(gomock.Any(), userID, categoryID).Return(true, nil)
		tx.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().
			BankAccountForUpdate(gomock.Any(), userID, accountID).
			Return(&source.BankAccount{ID: accountID, Balance: decimal.NewFromInt(100)}, nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, nil)
		_, _, err := svc.RepayLoan(context.Background(), ledger.RepayLoanParams{
			UserID:     userID,
			LoanID:     loanID,
			Amount:     decimal.NewFromInt(200),
			Source:     ledger.SourceRef{BankAccountID: idPtr(accountID)},
			CategoryID: categoryID,
			Date:       date,
		})
		assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)
	})
}

func TestService_CreateLoan(t *testing.T) {
	userID := uuid.New()

	t.Run("SeedsBalanceAndStatus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l *loan.Loan) error {
				assert.True(t, l.BalanceRemaining.Equal(decimal.NewFromInt(2000)))
				assert.Equal(t, loan.StatusUnpaid, l.Status)
				l.ID = uuid.New()
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, nil)
		l, err := svc.CreateLoan(context.Background(), ledger.CreateLoanParams{
			UserID:          userID,
			LenderName:      "Maria",
			Amount:          decimal.NewFromInt(2000),
			IsFundingSource: true,
		})
		require.NoError(t, err)
		assert.True(t, l.BalanceRemaining.Equal(l.Amount))
	})

	t.Run("ZeroAmountRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)

		svc := ledger.NewService(repo, nil)
		_, err := svc.CreateLoan(context.Background(), ledger.CreateLoanParams{
			UserID:     userID,
			LenderName: "Maria",
			Amount:     decimal.Zero,
		})
		assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	})
}

func TestService_UpdateLoanAmount(t *testing.T) {
	userID := uuid.New()
	loanID := uuid.New()

	t.Run("PreservesAmountPaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		l := &loan.Loan{
			ID:               loanID,
			Amount:           decimal.NewFromInt(1000),
			BalanceRemaining: decimal.NewFromInt(600),
			Status:           loan.StatusPartiallyPaid,
		}

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().LoanForUpdate(gomock.Any(), userID, loanID).Return(l, nil)
		tx.EXPECT().UpdateLoan(gomock.Any(), l).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, nil)
		got, err := svc.UpdateLoanAmount(context.Background(), userID, loanID, decimal.NewFromInt(1500))
		require.NoError(t, err)
		// 400 was paid; the new balance keeps that payment.
		assert.True(t, got.BalanceRemaining.Equal(decimal.NewFromInt(1100)))
		assert.Equal(t, loan.StatusPartiallyPaid, got.Status)
	})

	t.Run("CorruptedBalanceResets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		l := &loan.Loan{
			ID:               loanID,
			Amount:           decimal.NewFromInt(1000),
			BalanceRemaining: decimal.NewFromInt(1200),
			Status:           loan.StatusUnpaid,
		}

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().LoanForUpdate(gomock.Any(), userID, loanID).Return(l, nil)
		tx.EXPECT().UpdateLoan(gomock.Any(), l).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, nil)
		got, err := svc.UpdateLoanAmount(context.Background(), userID, loanID, decimal.NewFromInt(800))
		require.NoError(t, err)
		assert.True(t, got.BalanceRemaining.Equal(decimal.NewFromInt(800)))
		assert.Equal(t, loan.StatusUnpaid, got.Status)
	})
}

func TestService_MaterializeRecurring(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()
	accountID := uuid.New()

	newSeries := func(endDate *time.Time) *recurring.Transaction {
		return &recurring.Transaction{
			ID:            uuid.New(),
			UserID:        userID,
			CategoryID:    categoryID,
			BankAccountID: idPtr(accountID),
			Name:          "Netflix",
			Amount:        decimal.NewFromInt(15),
			Frequency:     recurring.FrequencyMonthly,
			NextDueDate:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			EndDate:       endDate,
			IsActive:      true,
		}
	}

	t.Run("CreatesExpenseAndAdvancesSchedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)
		rt := newSeries(nil)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().
			CreateExpense(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *ledger.Expense) error {
				assert.Equal(t, rt.NextDueDate, e.Date)
				assert.Equal(t, "Recurring: Netflix", e.Description)
				return nil
			})
		tx.EXPECT().
			BankAccountForUpdate(gomock.Any(), userID, accountID).
			Return(&source.BankAccount{ID: accountID, Balance: decimal.NewFromInt(100)}, nil)
		tx.EXPECT().ApplyBankBalance(gomock.Any(), accountID, decEq(-15)).Return(nil)
		tx.EXPECT().
			BudgetForPeriod(gomock.Any(), userID, categoryID, 1, 2026).
			Return(nil, nil)
		tx.EXPECT().
			UpdateRecurringSchedule(gomock.Any(), rt.ID,
				time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
				true).
			Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, nil)
		require.NoError(t, svc.MaterializeRecurring(context.Background(), rt))

		require.NotNil(t, rt.LastProcessedDate)
		assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *rt.LastProcessedDate)
		assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), rt.NextDueDate)
		assert.True(t, rt.IsActive)
	})

	t.Run("DeactivatesPastEndDate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)
		end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		rt := newSeries(&end)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().
			BankAccountForUpdate(gomock.Any(), userID, accountID).
			Return(&source.BankAccount{ID: accountID, Balance: decimal.NewFromInt(100)}, nil)
		tx.EXPECT().ApplyBankBalance(gomock.Any(), accountID, decEq(-15)).Return(nil)
		tx.EXPECT().
			BudgetForPeriod(gomock.Any(), userID, categoryID, 1, 2026).
			Return(nil, nil)
		tx.EXPECT().
			UpdateRecurringSchedule(gomock.Any(), rt.ID,
				time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
				false).
			Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, nil)
		require.NoError(t, svc.MaterializeRecurring(context.Background(), rt))
		assert.False(t, rt.IsActive)
	})

	t.Run("FailedDebitLeavesScheduleUntouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)
		rt := newSeries(nil)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().
			BankAccountForUpdate(gomock.Any(), userID, accountID).
			Return(&source.BankAccount{ID: accountID, Balance: decimal.NewFromInt(5)}, nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo, nil)
		err := svc.MaterializeRecurring(context.Background(), rt)
		assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)
		assert.Nil(t, rt.LastProcessedDate)
		assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), rt.NextDueDate)
	})
}

func TestService_ProcessMonthRollover(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	categoryID := uuid.New()
	clock := func() time.Time { return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC) }

	prev := &budget.Budget{
		ID:               uuid.New(),
		UserID:           userID,
		CategoryID:       categoryID,
		Amount:           decimal.NewFromInt(1000),
		Spent:            decimal.NewFromInt(600),
		RolloverEnabled:  true,
		AlertAt90Percent: true,
		Month:            2,
		Year:             2026,
	}

	repo := ledger.NewMockRepository(ctrl)
	tx := ledger.NewMockTx(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().
		RolloverCandidates(gomock.Any(), userID, 2, 2026).
		Return([]*budget.Budget{prev}, nil)
	tx.EXPECT().
		BudgetForPeriod(gomock.Any(), userID, categoryID, 3, 2026).
		Return(nil, nil)
	tx.EXPECT().
		CreateBudget(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *budget.Budget) error {
			assert.True(t, b.Amount.Equal(decimal.NewFromInt(1000)))
			assert.True(t, b.RolloverAmount.Equal(decimal.NewFromInt(400)))
			assert.Equal(t, 3, b.Month)
			assert.Equal(t, 2026, b.Year)
			assert.True(t, b.RolloverEnabled)
			return nil
		})
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	svc := ledger.NewService(repo, clock)
	carried, err := svc.ProcessMonthRollover(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, carried)
}

func TestService_CreateExpense_BeginError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("connection refused"))

	svc := ledger.NewService(repo, nil)
	_, err := svc.CreateExpense(context.Background(), ledger.CreateExpenseParams{
		UserID:     uuid.New(),
		CategoryID: uuid.New(),
		Source:     ledger.SourceRef{BankAccountID: idPtr(uuid.New())},
		Amount:     decimal.NewFromInt(10),
		Date:       time.Now(),
	})
	assert.Error(t, err)
}
