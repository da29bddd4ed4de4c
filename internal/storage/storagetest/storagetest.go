// Package storagetest provides in-memory table implementations for tests
// that exercise services and ledger actions without a database. The fakes
// mirror the SQL tables' observable behavior: user scoping, ordering, and
// (nil, nil) on missing rows.
package storagetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/accounts"
	"github.com/carson-networks/finance-server/internal/storage/categories"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

// FakeAccounts is an in-memory accounts.IAccountTable.
type FakeAccounts struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*accounts.Account

	// InsertErr, when set, is returned by Insert.
	InsertErr error
}

func NewFakeAccounts() *FakeAccounts {
	return &FakeAccounts{rows: make(map[uuid.UUID]*accounts.Account)}
}

// Seed adds an account row directly, bypassing Insert.
func (f *FakeAccounts) Seed(account *accounts.Account) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *account
	f.rows[account.ID] = &copied
}

func (f *FakeAccounts) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*accounts.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.rows[id]
	if !ok || account.UserID != userID {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (f *FakeAccounts) FindByIDForUpdate(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*accounts.Account, error) {
	return f.FindByID(ctx, id, userID)
}

func (f *FakeAccounts) Insert(ctx context.Context, create *accounts.AccountCreate) (*accounts.Account, error) {
	if f.InsertErr != nil {
		return nil, f.InsertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	account := &accounts.Account{
		ID:             uuid.Must(uuid.NewV4()),
		UserID:         create.UserID,
		Name:           create.Name,
		InitialBalance: create.InitialBalance,
		CurrentBalance: create.InitialBalance,
		CreatedAt:      time.Now().UTC(),
	}
	f.rows[account.ID] = account
	copied := *account
	return &copied, nil
}

func (f *FakeAccounts) List(ctx context.Context, userID uuid.UUID) ([]*accounts.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*accounts.Account
	for _, account := range f.rows {
		if account.UserID == userID {
			copied := *account
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

func (f *FakeAccounts) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account, ok := f.rows[id]; ok {
		account.CurrentBalance = balance
	}
	return nil
}

// Balance returns the current balance of an account, for assertions.
func (f *FakeAccounts) Balance(id uuid.UUID) decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account, ok := f.rows[id]; ok {
		return account.CurrentBalance
	}
	return decimal.Zero
}

// Delete removes an account row, simulating an orphaned transaction history.
func (f *FakeAccounts) Delete(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
}

// FakeCategories is an in-memory categories.ICategoryTable.
type FakeCategories struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*categories.Category
}

func NewFakeCategories() *FakeCategories {
	return &FakeCategories{rows: make(map[uuid.UUID]*categories.Category)}
}

func (f *FakeCategories) Seed(category *categories.Category) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *category
	f.rows[category.ID] = &copied
}

func (f *FakeCategories) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*categories.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	category, ok := f.rows[id]
	if !ok || category.UserID != userID {
		return nil, nil
	}
	copied := *category
	return &copied, nil
}

func (f *FakeCategories) Insert(ctx context.Context, create *categories.CategoryCreate) (*categories.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	category := &categories.Category{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    create.UserID,
		Name:      create.Name,
		Type:      create.Type,
		CreatedAt: time.Now().UTC(),
	}
	f.rows[category.ID] = category
	copied := *category
	return &copied, nil
}

func (f *FakeCategories) List(ctx context.Context, userID uuid.UUID) ([]*categories.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*categories.Category
	for _, category := range f.rows {
		if category.UserID == userID {
			copied := *category
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

// FakeTransactions is an in-memory transactions.ITransactionTable.
type FakeTransactions struct {
	mu   sync.Mutex
	rows []*transactions.Transaction

	// InsertErr, when set, is returned by Insert.
	InsertErr error
	// ListErr, when set, is returned by List.
	ListErr error
}

func NewFakeTransactions() *FakeTransactions {
	return &FakeTransactions{}
}

func (f *FakeTransactions) Seed(transaction *transactions.Transaction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *transaction
	f.rows = append(f.rows, &copied)
}

func (f *FakeTransactions) FindByID(ctx context.Context, id uuid.UUID) (*transactions.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.ID == id {
			copied := *row
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *FakeTransactions) Insert(ctx context.Context, create *transactions.TransactionCreate) (*transactions.Transaction, error) {
	if f.InsertErr != nil {
		return nil, f.InsertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	transaction := &transactions.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      create.UserID,
		AccountID:   create.AccountID,
		CategoryID:  create.CategoryID,
		Amount:      create.Amount,
		Date:        create.Date,
		Description: create.Description,
		Type:        create.Type,
		TaxRelevant: create.TaxRelevant,
		CreatedAt:   time.Now().UTC(),
	}
	f.rows = append(f.rows, transaction)
	copied := *transaction
	return &copied, nil
}

func (f *FakeTransactions) List(ctx context.Context, userID uuid.UUID, filter *transactions.TransactionFilter) ([]*transactions.Transaction, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []*transactions.Transaction
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		if filter != nil {
			if filter.Type != nil && row.Type != *filter.Type {
				continue
			}
			if filter.From != nil && row.Date.Before(*filter.From) {
				continue
			}
			if filter.To != nil && row.Date.After(*filter.To) {
				continue
			}
		}
		copied := *row
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID.String() > result[j].ID.String()
	})

	if filter != nil {
		if filter.Offset > 0 {
			if filter.Offset >= len(result) {
				return nil, nil
			}
			result = result[filter.Offset:]
		}
		if filter.Limit > 0 && filter.Limit < len(result) {
			result = result[:filter.Limit]
		}
	}
	return result, nil
}

func (f *FakeTransactions) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, row := range f.rows {
		if row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// Count returns the number of stored rows, for assertions.
func (f *FakeTransactions) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

// FakeTokens is an in-memory tokens.ITokenTable.
type FakeTokens struct {
	mu   sync.Mutex
	rows map[string]uuid.UUID
}

func NewFakeTokens() *FakeTokens {
	return &FakeTokens{rows: make(map[string]uuid.UUID)}
}

func (f *FakeTokens) Seed(token string, userID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[token] = userID
}

func (f *FakeTokens) Lookup(ctx context.Context, token string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[token], nil
}

// RecordingTx counts commits and rollbacks so tests can assert transaction
// outcomes.
type RecordingTx struct {
	mu        sync.Mutex
	Commits   int
	Rollbacks int
}

func (t *RecordingTx) Commit() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Commits++
	return nil
}

func (t *RecordingTx) Rollback() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Rollbacks++
	return nil
}

// FakeStore satisfies operator.WriteStore over the in-memory tables. Since
// the fakes apply changes immediately, a rollback does not undo them; tests
// assert on Tx counters instead.
type FakeStore struct {
	Accounts     *FakeAccounts
	Categories   *FakeCategories
	Transactions *FakeTransactions
	Tokens       *FakeTokens
	Tx           *RecordingTx
}

func NewFakeStore() *FakeStore {
	return &FakeStore{
		Accounts:     NewFakeAccounts(),
		Categories:   NewFakeCategories(),
		Transactions: NewFakeTransactions(),
		Tokens:       NewFakeTokens(),
		Tx:           &RecordingTx{},
	}
}

func (s *FakeStore) Write(ctx context.Context) (*storage.Writer, error) {
	return storage.NewWriter(s.Tx, s.Accounts, s.Categories, s.Transactions), nil
}

// Storage bundles the fakes into a storage.Storage for read paths.
func (s *FakeStore) Storage() *storage.Storage {
	return &storage.Storage{
		Accounts:     s.Accounts,
		Categories:   s.Categories,
		Transactions: s.Transactions,
		Tokens:       s.Tokens,
	}
}
