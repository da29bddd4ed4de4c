package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/storage/accounts"
	"github.com/carson-networks/finance-server/internal/storage/categories"
	"github.com/carson-networks/finance-server/internal/storage/tokens"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

// Storage is the root of the persistence layer. Read paths go through the
// table fields directly; ledger mutations go through Write so the transaction
// insert and the balance update commit as one unit.
type Storage struct {
	db           bob.DB
	Accounts     accounts.IAccountTable
	Categories   categories.ICategoryTable
	Transactions transactions.ITransactionTable
	Tokens       tokens.ITokenTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	sqlDB, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, err
	}

	db := bob.NewDB(sqlDB)
	return &Storage{
		db:           db,
		Accounts:     accounts.NewTable(db),
		Categories:   categories.NewTable(db),
		Transactions: transactions.NewTable(db),
		Tokens:       tokens.NewTable(db),
	}, nil
}

// Write opens a database transaction and returns a Writer whose tables all
// operate inside it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(
		bobTx{tx: tx},
		accounts.NewTable(tx),
		categories.NewTable(tx),
		transactions.NewTable(tx),
	), nil
}
