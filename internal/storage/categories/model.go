package categories

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

// Type classifies a category. A category typed "both" is usable for income
// and expense transactions alike.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
	TypeBoth    Type = "both"
)

func (t Type) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeBoth:
		return true
	}
	return false
}

// Matches reports whether the category type admits the given transaction
// type. "both" matches either direction.
func (t Type) Matches(transactionType transactions.Type) bool {
	if t == TypeBoth {
		return true
	}
	return string(t) == string(transactionType)
}

// Category represents a category record.
type Category struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Type      Type      `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID uuid.UUID
	Name   string
	Type   Type
}

// ICategoryTable defines the interface for category storage operations.
// Find operations return (nil, nil) when no row matches.
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Category, error)
}
