package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo-app/centavo/internal/source"
)

// applyBalance adds delta to the referenced source's balance; a
// reversal is the same call with the sign flipped. Loan references
// write nothing: a loan's available balance is derived from the
// expenses drawn against it.
//
// There is deliberately no bounds check here. Spend-side callers
// validate sufficient balance before debiting; credits and corrective
// reversals may legitimately pass through states a spend check would
// reject.
func applyBalance(ctx context.Context, tx source.Tx, ref SourceRef, delta decimal.Decimal) error {
	switch {
	case ref.BankAccountID != nil:
		if err := tx.ApplyBankBalance(ctx, *ref.BankAccountID, delta); err != nil {
			return fmt.Errorf("applying bank balance: %w", err)
		}
	case ref.FundSourceID != nil:
		if err := tx.ApplyFundBalance(ctx, *ref.FundSourceID, delta); err != nil {
			return fmt.Errorf("applying fund balance: %w", err)
		}
	}

	return nil
}

// resolveSource loads the referenced payment source under a row lock,
// verifying ownership. Loans must be flagged as funding sources to be
// spendable.
func (s *Service) resolveSource(ctx context.Context, tx Tx, userID uuid.UUID, ref SourceRef) (source.PaymentSource, error) {
	kind, err := ref.Kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case source.KindBank:
		return tx.BankAccountForUpdate(ctx, userID, *ref.BankAccountID)
	case source.KindFund:
		return tx.FundSourceForUpdate(ctx, userID, *ref.FundSourceID)
	case source.KindLoan:
		l, err := tx.LoanForUpdate(ctx, userID, *ref.LoanID)
		if err != nil {
			return nil, err
		}

		if !l.IsFundingSource {
			return nil, fmt.Errorf("loan is not a funding source: %w", ErrInvalidState)
		}

		return l, nil
	}

	return nil, ErrInvalidPaymentSource
}
