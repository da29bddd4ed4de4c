package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

// CreateTransactionBody is the request body for recording a transaction.
type CreateTransactionBody struct {
	Amount          string `json:"amount" required:"true" doc:"Decimal amount, must be positive"`
	Date            string `json:"date,omitempty" doc:"RFC3339 or YYYY-MM-DD date, defaults to now"`
	Description     string `json:"description" required:"true" doc:"Description of the transaction"`
	CategoryID      string `json:"categoryId" required:"true" doc:"Category UUID"`
	AccountID       string `json:"accountId" required:"true" doc:"Account UUID"`
	TransactionType string `json:"transactionType" required:"true" doc:"income or expense"`
	TaxRelevant     bool   `json:"taxRelevant,omitempty" doc:"Mark for fiscal subtotals, defaults to false"`
}

// CreateTransactionInput is the Huma input for recording a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for recording a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionRecorder is the interface for recording transactions.
type transactionRecorder interface {
	RecordTransaction(ctx context.Context, userID uuid.UUID, input service.RecordTransactionInput) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	Ledger transactionRecorder
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(ledger transactionRecorder) *CreateTransactionHandler {
	return &CreateTransactionHandler{Ledger: ledger}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/transactions",
		Summary:     "Record transaction",
		Description: "Records a new transaction and updates the owning account's balance.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput converts the wire body into the service input.
// Reference and format errors are 400s here; field presence and range rules
// are the ledger service's job.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.RecordTransactionInput, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.RecordTransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return service.RecordTransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
	}
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return service.RecordTransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid accountId", err)
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = parseDate(input.Body.Date)
		if err != nil {
			return service.RecordTransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return service.RecordTransactionInput{
		Amount:      amount,
		Date:        date,
		Description: input.Body.Description,
		CategoryID:  categoryID,
		AccountID:   accountID,
		Type:        transactions.Type(input.Body.TransactionType),
		TaxRelevant: input.Body.TaxRelevant,
	}, nil
}

// parseDate accepts RFC3339 timestamps and bare dates.
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return date, nil
	}
	return time.Parse("2006-01-02", value)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing identity")
	}
	logData := logging.GetLogData(ctx)

	recordInput, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("recordTransactionMs")
	}
	created, err := h.Ledger.RecordTransaction(ctx, userID, recordInput)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.Transform(err, "failed to record transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", created.ID.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   fromService(*created),
	}, nil
}
