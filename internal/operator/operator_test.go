package operator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/accounts"
	"github.com/carson-networks/finance-server/internal/storage/categories"
	"github.com/carson-networks/finance-server/internal/storage/storagetest"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

type stubAction struct {
	mu        sync.Mutex
	performed int
	err       error
}

func (a *stubAction) Perform(ctx context.Context, writer *storage.Writer) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.performed++
	return a.err
}

func (a *stubAction) performedCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.performed
}

func TestDelegator_ProcessCommitsOnSuccess(t *testing.T) {
	store := storagetest.NewFakeStore()
	delegator := NewOperatorDelegator(store, 1)
	delegator.Start()
	defer delegator.Stop()

	action := &stubAction{}
	err := delegator.Process(context.Background(), action)

	assert.NoError(t, err)
	assert.Equal(t, 1, action.performedCount())
	assert.Equal(t, 1, store.Tx.Commits)
	assert.Equal(t, 0, store.Tx.Rollbacks)
}

func TestDelegator_ProcessRollsBackOnError(t *testing.T) {
	store := storagetest.NewFakeStore()
	delegator := NewOperatorDelegator(store, 1)
	delegator.Start()
	defer delegator.Stop()

	actionErr := errors.New("balance update failed")
	action := &stubAction{err: actionErr}
	err := delegator.Process(context.Background(), action)

	assert.ErrorIs(t, err, actionErr)
	assert.Equal(t, 0, store.Tx.Commits)
	assert.Equal(t, 1, store.Tx.Rollbacks)
}

func TestDelegator_SerialActionsAllComplete(t *testing.T) {
	store := storagetest.NewFakeStore()
	delegator := NewOperatorDelegator(store, 1)
	delegator.Start()
	defer delegator.Stop()

	action := &stubAction{}
	for i := 0; i < 10; i++ {
		assert.NoError(t, delegator.Process(context.Background(), action))
	}
	assert.Equal(t, 10, action.performedCount())
	assert.Equal(t, 10, store.Tx.Commits)
}

func TestDelegator_RecordFailureRollsBackBalance(t *testing.T) {
	store := storagetest.NewFakeStore()
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	store.Accounts.Seed(&accounts.Account{
		ID:             accountID,
		UserID:         userID,
		Name:           "Checking",
		InitialBalance: decimal.RequireFromString("100.00"),
		CurrentBalance: decimal.RequireFromString("100.00"),
	})
	store.Categories.Seed(&categories.Category{
		ID:     categoryID,
		UserID: userID,
		Name:   "Groceries",
		Type:   categories.TypeExpense,
	})
	insertErr := errors.New("insert failed")
	store.Transactions.InsertErr = insertErr

	delegator := NewOperatorDelegator(store, 1)
	delegator.Start()
	defer delegator.Stop()

	action := &actions.RecordTransaction{
		UserID:      userID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      decimal.RequireFromString("25.00"),
		Description: "Weekly shop",
		Type:        transactions.TypeExpense,
	}
	err := delegator.Process(context.Background(), action)

	assert.ErrorIs(t, err, insertErr)
	assert.Equal(t, 0, store.Tx.Commits)
	assert.Equal(t, 1, store.Tx.Rollbacks)
	assert.Equal(t, 0, store.Transactions.Count())
	assert.True(t, decimal.RequireFromString("100.00").Equal(store.Accounts.Balance(accountID)))
}

func TestDelegator_StopIsIdempotent(t *testing.T) {
	store := storagetest.NewFakeStore()
	delegator := NewOperatorDelegator(store, 2)
	delegator.Start()

	delegator.Stop()
	delegator.Stop()
}
