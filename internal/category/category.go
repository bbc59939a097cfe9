package category

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type separates earning categories from spending ones.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Category classifies expenses and incomes. A nil UserID marks a
// global category shared by everyone; global categories cannot be
// edited or deleted by users.
type Category struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Name      string
	Type      Type
	Icon      string
	Color     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Global reports whether the category is shared rather than user-owned.
func (c *Category) Global() bool { return c.UserID == nil }

// Repository lists the categories visible to a user: the global set
// plus the user's own.
type Repository interface {
	ListVisible(ctx context.Context, userID uuid.UUID) ([]*Category, error)
}
