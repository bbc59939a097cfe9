package ledger

import "errors"

var (
	// ErrInvalidPaymentSource means zero or multiple payment sources
	// were selected where exactly one is required.
	ErrInvalidPaymentSource = errors.New("exactly one payment source must be selected")

	// ErrNotFound covers referenced entities that are missing or not
	// owned by the requesting user.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientBalance means the source holds less than the
	// requested amount.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount rejects non-positive monetary amounts.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidState covers operations against entities in a state
	// that forbids them, such as paying a completed installment or
	// repaying more than a loan's remaining balance.
	ErrInvalidState = errors.New("invalid state")
)
