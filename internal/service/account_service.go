package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/errdefs"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/accounts"
)

// Account represents an account in the service layer.
type Account struct {
	ID             uuid.UUID
	Name           string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	CreatedAt      time.Time
}

// AccountService handles account business logic. Balances are never written
// here: only the ledger actions touch CurrentBalance after creation.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// CreateAccount creates a new account for the user. The current balance
// starts equal to the initial balance.
func (s *AccountService) CreateAccount(ctx context.Context, userID uuid.UUID, name string, initialBalance decimal.Decimal) (*Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &errdefs.ValidationError{Fields: []string{"name"}}
	}

	row, err := s.storage.Accounts.Insert(ctx, &accounts.AccountCreate{
		UserID:         userID,
		Name:           name,
		InitialBalance: initialBalance,
	})
	if err != nil {
		return nil, err
	}

	converted := accountFromStorage(row)
	return &converted, nil
}

// ListAccounts returns the user's accounts sorted by name.
func (s *AccountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]Account, error) {
	rows, err := s.storage.Accounts.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = accountFromStorage(row)
	}
	return converted, nil
}

func accountFromStorage(row *accounts.Account) Account {
	return Account{
		ID:             row.ID,
		Name:           row.Name,
		InitialBalance: row.InitialBalance,
		CurrentBalance: row.CurrentBalance,
		CreatedAt:      row.CreatedAt,
	}
}
