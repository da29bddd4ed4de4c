package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/errdefs"
	"github.com/carson-networks/finance-server/internal/storage"
)

// DeleteTransaction removes a transaction and folds the inverse of its
// original contribution back into the owning account. When the owning account
// no longer resolves (orphaned reference), the balance fold is skipped and
// only the transaction row is removed.
type DeleteTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	transaction, err := writer.Transactions.FindByID(ctx, a.TransactionID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return &errdefs.NotFoundError{Resource: "transaction", ID: a.TransactionID.String()}
	}
	if transaction.UserID != a.UserID {
		return &errdefs.AuthorizationError{Resource: "transaction"}
	}

	account, err := writer.Accounts.FindByIDForUpdate(ctx, transaction.AccountID, a.UserID)
	if err != nil {
		return err
	}
	if account != nil {
		newBalance := account.CurrentBalance.Sub(transaction.Type.Delta(transaction.Amount))
		if err := writer.Accounts.UpdateBalance(ctx, transaction.AccountID, newBalance); err != nil {
			return err
		}
	}

	return writer.Transactions.Delete(ctx, a.TransactionID)
}
