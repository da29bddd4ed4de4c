package actions

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/errdefs"
	"github.com/carson-networks/finance-server/internal/storage/accounts"
	"github.com/carson-networks/finance-server/internal/storage/categories"
	"github.com/carson-networks/finance-server/internal/storage/storagetest"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

func seedAccount(store *storagetest.FakeStore, userID uuid.UUID, balance string) uuid.UUID {
	accountID := uuid.Must(uuid.NewV4())
	store.Accounts.Seed(&accounts.Account{
		ID:             accountID,
		UserID:         userID,
		Name:           "Checking",
		InitialBalance: decimal.RequireFromString(balance),
		CurrentBalance: decimal.RequireFromString(balance),
	})
	return accountID
}

func seedCategory(store *storagetest.FakeStore, userID uuid.UUID, categoryType categories.Type) uuid.UUID {
	categoryID := uuid.Must(uuid.NewV4())
	store.Categories.Seed(&categories.Category{
		ID:     categoryID,
		UserID: userID,
		Name:   "Groceries",
		Type:   categoryType,
	})
	return categoryID
}

func performRecord(t *testing.T, store *storagetest.FakeStore, action *RecordTransaction) error {
	t.Helper()
	writer, err := store.Write(context.Background())
	require.NoError(t, err)
	return action.Perform(context.Background(), writer)
}

func TestRecordTransaction_IncomeRaisesBalance(t *testing.T) {
	store := storagetest.NewFakeStore()
	userID := uuid.Must(uuid.NewV4())
	accountID := seedAccount(store, userID, "100.00")
	categoryID := seedCategory(store, userID, categories.TypeIncome)

	action := &RecordTransaction{
		UserID:      userID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      decimal.RequireFromString("42.50"),
		Date:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Description: "Salary",
		Type:        transactions.TypeIncome,
	}

	err := performRecord(t, store, action)
	assert.NoError(t, err)
	require.NotNil(t, action.Created)
	assert.Equal(t, userID, action.Created.UserID)
	assert.True(t, decimal.RequireFromString("142.5").Equal(store.Accounts.Balance(accountID)))
}

func TestRecordTransaction_ExpenseLowersBalance(t *testing.T) {
	store := storagetest.NewFakeStore()
	userID := uuid.Must(uuid.NewV4())
	accountID := seedAccount(store, userID, "100.00")
	categoryID := seedCategory(store, userID, categories.TypeExpense)

	action := &RecordTransaction{
		UserID:      userID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      decimal.RequireFromString("30.00"),
		Date:        time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		Description: "Groceries",
		Type:        transactions.TypeExpense,
	}

	err := performRecord(t, store, action)
	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("70").Equal(store.Accounts.Balance(accountID)))
}

func TestRecordTransaction_BalanceCanGoNegative(t *testing.T) {
	store := storagetest.NewFakeStore()
	userID := uuid.Must(uuid.NewV4())
	accountID := seedAccount(store, userID, "10.00")
	categoryID := seedCategory(store, userID, categories.TypeExpense)

	action := &RecordTransaction{
		UserID:     userID,
		AccountID:  accountID,
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString("25.00"),
		Date:       time.Now().UTC(),
		Type:       transactions.TypeExpense,
	}

	err := performRecord(t, store, action)
	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("-15").Equal(store.Accounts.Balance(accountID)))
}

func TestRecordTransaction_UnknownCategory(t *testing.T) {
	store := storagetest.NewFakeStore()
	userID := uuid.Must(uuid.NewV4())
	accountID := seedAccount(store, userID, "100.00")

	action := &RecordTransaction{
		UserID:     userID,
		AccountID:  accountID,
		CategoryID: uuid.Must(uuid.NewV4()),
		Amount:     decimal.RequireFromString("5.00"),
		Type:       transactions.TypeExpense,
	}

	err := performRecord(t, store, action)
	assert.True(t, errdefs.IsNotFound(err))
	assert.Equal(t, 0, store.Transactions.Count())
	assert.True(t, decimal.RequireFromString("100.00").Equal(store.Accounts.Balance(accountID)))
}

func TestRecordTransaction_UnknownAccount(t *testing.T) {
	store := storagetest.NewFakeStore()
	userID := uuid.Must(uuid.NewV4())
	categoryID := seedCategory(store, userID, categories.TypeBoth)

	action := &RecordTransaction{
		UserID:     userID,
		AccountID:  uuid.Must(uuid.NewV4()),
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString("5.00"),
		Type:       transactions.TypeIncome,
	}

	err := performRecord(t, store, action)
	assert.True(t, errdefs.IsNotFound(err))
	assert.Equal(t, 0, store.Transactions.Count())
}

func TestRecordTransaction_OtherUsersCategoryIsNotFound(t *testing.T) {
	store := storagetest.NewFakeStore()
	userID := uuid.Must(uuid.NewV4())
	otherUserID := uuid.Must(uuid.NewV4())
	accountID := seedAccount(store, userID, "100.00")
	categoryID := seedCategory(store, otherUserID, categories.TypeIncome)

	action := &RecordTransaction{
		UserID:     userID,
		AccountID:  accountID,
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString("5.00"),
		Type:       transactions.TypeIncome,
	}

	err := performRecord(t, store, action)
	assert.True(t, errdefs.IsNotFound(err))
}
