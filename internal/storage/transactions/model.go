package transactions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Type is the direction of a transaction. It determines the sign applied to
// the amount when folded into the owning account's balance.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Delta returns the signed balance contribution for an amount of this type:
// +amount for income, -amount for expense.
func (t Type) Delta(amount decimal.Decimal) decimal.Decimal {
	if t == TypeIncome {
		return amount
	}
	return amount.Neg()
}

// Transaction represents a transaction record. Amount is always the
// non-negative magnitude; Type carries the sign.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	AccountID   uuid.UUID       `db:"account_id"`
	CategoryID  uuid.UUID       `db:"category_id"`
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"date"`
	Description string          `db:"description"`
	Type        Type            `db:"transaction_type"`
	TaxRelevant bool            `db:"tax_relevant"`
	CreatedAt   time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Type        Type
	TaxRelevant bool
}

// TransactionFilter specifies filters for listing transactions. Nil filter
// returns the user's full history.
type TransactionFilter struct {
	Type   *Type
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// ITransactionTable defines the interface for transaction storage operations.
// FindByID is unscoped on purpose: delete distinguishes "missing" from "not
// yours", so ownership is checked by the caller.
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context, userID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
