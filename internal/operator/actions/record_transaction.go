package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/errdefs"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

// RecordTransaction appends a transaction to the ledger and folds its signed
// amount into the owning account's current balance. The account row is locked
// for the duration of the transaction, so concurrent records on the same
// account serialize at the database.
type RecordTransaction struct {
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Type        transactions.Type
	TaxRelevant bool

	// Created is set to the stored transaction after a successful Perform.
	Created *transactions.Transaction
}

func (a *RecordTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.FindByID(ctx, a.CategoryID, a.UserID)
	if err != nil {
		return err
	}
	if category == nil {
		return &errdefs.NotFoundError{Resource: "category", ID: a.CategoryID.String()}
	}

	account, err := writer.Accounts.FindByIDForUpdate(ctx, a.AccountID, a.UserID)
	if err != nil {
		return err
	}
	if account == nil {
		return &errdefs.NotFoundError{Resource: "account", ID: a.AccountID.String()}
	}

	created, err := writer.Transactions.Insert(ctx, &transactions.TransactionCreate{
		UserID:      a.UserID,
		AccountID:   a.AccountID,
		CategoryID:  a.CategoryID,
		Amount:      a.Amount,
		Date:        a.Date,
		Description: a.Description,
		Type:        a.Type,
		TaxRelevant: a.TaxRelevant,
	})
	if err != nil {
		return err
	}

	newBalance := account.CurrentBalance.Add(a.Type.Delta(a.Amount))
	if err := writer.Accounts.UpdateBalance(ctx, a.AccountID, newBalance); err != nil {
		return err
	}

	a.Created = created
	return nil
}
