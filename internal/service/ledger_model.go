package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/categories"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

// Transaction represents a transaction in the service layer. CategoryName,
// CategoryType, and AccountName are resolved on read paths and empty
// otherwise.
type Transaction struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	CategoryID   uuid.UUID
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	Type         transactions.Type
	TaxRelevant  bool
	CreatedAt    time.Time
	CategoryName string
	CategoryType categories.Type
	AccountName  string
}

// RecordTransactionInput carries the caller-supplied fields for recording a
// transaction. Amount is the non-negative magnitude; Type carries the sign.
type RecordTransactionInput struct {
	Amount      decimal.Decimal
	Date        time.Time // defaults to now when zero
	Description string
	CategoryID  uuid.UUID
	AccountID   uuid.UUID
	Type        transactions.Type
	TaxRelevant bool
}

// Page is a page request for transaction listing. Page numbers are 1-based.
type Page struct {
	Page  int
	Limit int
}

func transactionFromStorage(row *transactions.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		AccountID:   row.AccountID,
		CategoryID:  row.CategoryID,
		Amount:      row.Amount,
		Date:        row.Date,
		Description: row.Description,
		Type:        row.Type,
		TaxRelevant: row.TaxRelevant,
		CreatedAt:   row.CreatedAt,
	}
}
