// Package tokens backs the access gate: it resolves a bearer credential to
// the user identity it was issued for. Credential issuance itself happens
// outside this server.
package tokens

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// ITokenTable defines the interface for token lookups.
// Lookup returns uuid.Nil with a nil error when the token is unknown.
type ITokenTable interface {
	Lookup(ctx context.Context, token string) (uuid.UUID, error)
}

var _ ITokenTable = (*Table)(nil)

// Table provides access to the api_tokens table.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

func (t *Table) Lookup(ctx context.Context, token string) (uuid.UUID, error) {
	query := psql.Select(
		sm.Columns("user_id"),
		sm.From("api_tokens"),
		sm.Where(psql.Quote("token").EQ(psql.Arg(token))),
	)

	userID, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	return userID, nil
}
