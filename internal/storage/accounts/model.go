package accounts

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Account represents an account record.
type Account struct {
	ID             uuid.UUID       `db:"id"`
	UserID         uuid.UUID       `db:"user_id"`
	Name           string          `db:"name"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	CreatedAt      time.Time       `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
// CurrentBalance always starts equal to InitialBalance.
type AccountCreate struct {
	UserID         uuid.UUID
	Name           string
	InitialBalance decimal.Decimal
}

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the implementation without changing callers.
// Find operations return (nil, nil) when no row matches.
type IAccountTable interface {
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Account, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Account, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}
