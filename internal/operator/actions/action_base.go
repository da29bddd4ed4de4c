package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
)

// IAction is a ledger mutation performed inside one storage transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
