package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/storage/accounts"
	"github.com/carson-networks/finance-server/internal/storage/categories"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

// Tx is the commit/rollback surface of an open storage transaction.
type Tx interface {
	Commit() error
	Rollback() error
}

// Writer bundles the tables bound to one open transaction. Everything done
// through it becomes visible atomically on Commit.
type Writer struct {
	tx           Tx
	Accounts     accounts.IAccountTable
	Categories   categories.ICategoryTable
	Transactions transactions.ITransactionTable
}

func NewWriter(
	tx Tx,
	accountTable accounts.IAccountTable,
	categoryTable categories.ICategoryTable,
	transactionTable transactions.ITransactionTable,
) *Writer {
	return &Writer{
		tx:           tx,
		Accounts:     accountTable,
		Categories:   categoryTable,
		Transactions: transactionTable,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}

type bobTx struct {
	tx bob.Tx
}

func (b bobTx) Commit() error {
	return b.tx.Commit(context.Background())
}

func (b bobTx) Rollback() error {
	return b.tx.Rollback(context.Background())
}
