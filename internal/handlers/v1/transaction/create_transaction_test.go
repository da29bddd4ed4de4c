package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/errdefs"
	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

// mockLedgerService is a mock for the ledger interfaces the handlers consume.
type mockLedgerService struct {
	mock.Mock
}

func (m *mockLedgerService) RecordTransaction(ctx context.Context, userID uuid.UUID, input service.RecordTransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func (m *mockLedgerService) ListTransactions(ctx context.Context, userID uuid.UUID, page *service.Page) ([]service.Transaction, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func (m *mockLedgerService) DeleteTransaction(ctx context.Context, userID uuid.UUID, transactionID uuid.UUID) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// identityInjector stands in for the real token middleware in tests.
func identityInjector(userID uuid.UUID) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(identity.WithUserID(ctx, userID))
	}
}

// newTestAPI registers all transaction handlers against a humatest API with
// the given caller identity.
func newTestAPI(t *testing.T, svc *mockLedgerService, userID uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(identityInjector(userID))
	NewCreateTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewListTransactionsPaginatedHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}

func validBody() CreateTransactionBody {
	return CreateTransactionBody{
		Amount:          "12.50",
		Description:     "Coffee",
		CategoryID:      uuid.Must(uuid.NewV4()).String(),
		AccountID:       uuid.Must(uuid.NewV4()).String(),
		TransactionType: "expense",
	}
}

func serviceTransactionFor(userID uuid.UUID, input service.RecordTransactionInput) *service.Transaction {
	return &service.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		AccountID:   input.AccountID,
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		Date:        input.Date,
		Description: input.Description,
		Type:        input.Type,
		TaxRelevant: input.TaxRelevant,
		CreatedAt:   time.Now().UTC(),
	}
}

// -- parseCreateTransactionInput unit tests --

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	body := validBody()
	body.Date = "2026-01-15T10:30:00Z"
	body.TaxRelevant = true

	parsed, err := parseCreateTransactionInput(&CreateTransactionInput{Body: body})
	assert.NoError(t, err)
	assert.True(t, parsed.Amount.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, "Coffee", parsed.Description)
	assert.Equal(t, transactions.TypeExpense, parsed.Type)
	assert.True(t, parsed.TaxRelevant)
	expectedDate, _ := time.Parse(time.RFC3339, body.Date)
	assert.True(t, parsed.Date.Equal(expectedDate))
}

func TestParseCreateTransactionInput_BareDate(t *testing.T) {
	body := validBody()
	body.Date = "2026-01-15"

	parsed, err := parseCreateTransactionInput(&CreateTransactionInput{Body: body})
	assert.NoError(t, err)
	assert.Equal(t, 2026, parsed.Date.Year())
	assert.Equal(t, time.January, parsed.Date.Month())
	assert.Equal(t, 15, parsed.Date.Day())
}

func TestParseCreateTransactionInput_NoDate(t *testing.T) {
	parsed, err := parseCreateTransactionInput(&CreateTransactionInput{Body: validBody()})
	assert.NoError(t, err)
	assert.True(t, parsed.Date.IsZero())
}

func TestParseCreateTransactionInput_BadAmount(t *testing.T) {
	body := validBody()
	body.Amount = "twelve"

	_, err := parseCreateTransactionInput(&CreateTransactionInput{Body: body})
	assert.Error(t, err)
}

// -- HTTP tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	body := validBody()

	mockSvc := new(mockLedgerService)
	mockSvc.On("RecordTransaction", mock.Anything, userID, mock.MatchedBy(func(input service.RecordTransactionInput) bool {
		return input.Amount.Equal(decimal.RequireFromString("12.50")) &&
			input.Description == "Coffee" &&
			input.Type == transactions.TypeExpense
	})).Return(serviceTransactionFor(userID, service.RecordTransactionInput{
		Amount:      decimal.RequireFromString("12.50"),
		Description: "Coffee",
		Type:        transactions.TypeExpense,
	}), nil)

	resp := newTestAPI(t, mockSvc, userID).Post("/transactions", body)

	assert.Equal(t, http.StatusCreated, resp.Code)
	var decoded Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "12.5", decoded.Amount)
	assert.Equal(t, "Coffee", decoded.Description)
	assert.Equal(t, "expense", decoded.TransactionType)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockLedgerService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/transactions", CreateTransactionBody{
		Amount: "10.00",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "RecordTransaction")
}

func TestHTTP_CreateTransaction_InvalidUUID(t *testing.T) {
	mockSvc := new(mockLedgerService)
	body := validBody()
	body.AccountID = "not-a-uuid"

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/transactions", body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "RecordTransaction")
}

func TestHTTP_CreateTransaction_ValidationErrorIs400(t *testing.T) {
	mockSvc := new(mockLedgerService)
	mockSvc.On("RecordTransaction", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &errdefs.ValidationError{Fields: []string{"amount"}})

	body := validBody()
	body.Amount = "-5.00"
	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/transactions", body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateTransaction_UnknownAccountIs404(t *testing.T) {
	mockSvc := new(mockLedgerService)
	mockSvc.On("RecordTransaction", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &errdefs.NotFoundError{Resource: "account"})

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/transactions", validBody())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CreateTransaction_StoreErrorIs500(t *testing.T) {
	mockSvc := new(mockLedgerService)
	mockSvc.On("RecordTransaction", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/transactions", validBody())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
