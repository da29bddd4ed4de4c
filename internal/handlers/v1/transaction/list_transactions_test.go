package transaction

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/categories"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

func sampleListing() []service.Transaction {
	return []service.Transaction{
		{
			ID:           uuid.Must(uuid.NewV4()),
			AccountID:    uuid.Must(uuid.NewV4()),
			AccountName:  "Checking",
			CategoryID:   uuid.Must(uuid.NewV4()),
			CategoryName: "Rent",
			CategoryType: categories.TypeExpense,
			Amount:       decimal.RequireFromString("800.00"),
			Date:         time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			Description:  "February rent",
			Type:         transactions.TypeExpense,
			CreatedAt:    time.Now().UTC(),
		},
	}
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockLedgerService)
	mockSvc.On("ListTransactions", mock.Anything, userID, (*service.Page)(nil)).
		Return(sampleListing(), nil)

	resp := newTestAPI(t, mockSvc, userID).Get("/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var decoded []Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Rent", decoded[0].CategoryName)
	assert.Equal(t, "Checking", decoded[0].AccountName)
	assert.Equal(t, "800", decoded[0].Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_EmptyHistory(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockLedgerService)
	mockSvc.On("ListTransactions", mock.Anything, userID, (*service.Page)(nil)).
		Return([]service.Transaction{}, nil)

	resp := newTestAPI(t, mockSvc, userID).Get("/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var decoded []Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Empty(t, decoded)
}

func TestHTTP_ListTransactionsPaginated_ForwardsPage(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockLedgerService)
	mockSvc.On("ListTransactions", mock.Anything, userID, mock.MatchedBy(func(page *service.Page) bool {
		return page != nil && page.Page == 3 && page.Limit == 10
	})).Return(sampleListing(), nil)

	resp := newTestAPI(t, mockSvc, userID).Get("/transactions/paginated?page=3&limit=10")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactionsPaginated_RejectsZeroPage(t *testing.T) {
	mockSvc := new(mockLedgerService)

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Get("/transactions/paginated?page=0")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}
