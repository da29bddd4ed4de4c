package accounts

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var columns = []any{"id", "user_id", "name", "initial_balance", "current_balance", "created_at"}

var _ IAccountTable = (*Table)(nil)

// Table provides access to the accounts table through the given executor,
// which may be a database handle or an open transaction.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

func (t *Table) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Account, error) {
	return t.findByID(ctx, id, userID, false)
}

// FindByIDForUpdate locks the account row for the remainder of the enclosing
// transaction. Balance folds read through this so concurrent ledger writes on
// the same account serialize instead of clobbering each other.
func (t *Table) FindByIDForUpdate(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Account, error) {
	return t.findByID(ctx, id, userID, true)
}

func (t *Table) findByID(ctx context.Context, id uuid.UUID, userID uuid.UUID, forUpdate bool) (*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Account]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Insert creates a new account and returns the stored row.
func (t *Table) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	query := psql.Insert(
		im.Into("accounts", "user_id", "name", "initial_balance", "current_balance"),
		im.Values(psql.Arg(create.UserID, create.Name, create.InitialBalance, create.InitialBalance)),
		im.Returning(columns...),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the user's accounts ordered by name.
func (t *Table) List(ctx context.Context, userID uuid.UUID) ([]*Account, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}

	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// UpdateBalance updates the current balance for a given account.
func (t *Table) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	query := psql.Update(
		um.Table("accounts"),
		um.SetCol("current_balance").ToArg(balance),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, t.exec, query)
	return err
}
