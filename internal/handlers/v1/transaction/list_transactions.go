package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, page *service.Page) ([]service.Transaction, error)
}

// ListTransactionsInput is the Huma input for listing all transactions.
type ListTransactionsInput struct{}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body []Transaction
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	Ledger transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(ledger transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{Ledger: ledger}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns all of the caller's transactions sorted by date descending, with category and account names resolved.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, _ *ListTransactionsInput) (*ListTransactionsOutput, error) {
	return listTransactions(ctx, h.Ledger, nil)
}

// ListTransactionsPaginatedInput is the Huma input for the paginated listing.
type ListTransactionsPaginatedInput struct {
	Page  int `query:"page" minimum:"1" doc:"1-based page number, default 1"`
	Limit int `query:"limit" minimum:"1" maximum:"100" doc:"Page size, default 20"`
}

// ListTransactionsPaginatedHandler handles GET /transactions/paginated.
type ListTransactionsPaginatedHandler struct {
	Ledger transactionLister
}

// NewListTransactionsPaginatedHandler creates a new ListTransactionsPaginatedHandler.
func NewListTransactionsPaginatedHandler(ledger transactionLister) *ListTransactionsPaginatedHandler {
	return &ListTransactionsPaginatedHandler{Ledger: ledger}
}

// Register registers the paginated listing endpoint with the Huma API.
func (h *ListTransactionsPaginatedHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions-paginated",
		Method:      http.MethodGet,
		Path:        "/transactions/paginated",
		Summary:     "List transactions (paginated)",
		Description: "Returns one page of the caller's transactions, same sort and name resolution as the full listing.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsPaginatedHandler) handle(ctx context.Context, input *ListTransactionsPaginatedInput) (*ListTransactionsOutput, error) {
	page := &service.Page{Page: input.Page, Limit: input.Limit}
	return listTransactions(ctx, h.Ledger, page)
}

func listTransactions(ctx context.Context, ledger transactionLister, page *service.Page) (*ListTransactionsOutput, error) {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing identity")
	}
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	rows, err := ledger.ListTransactions(ctx, userID, page)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.Transform(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(rows))
	}

	body := make([]Transaction, len(rows))
	for i, row := range rows {
		body[i] = fromService(row)
	}
	return &ListTransactionsOutput{Body: body}, nil
}
