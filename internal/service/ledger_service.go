package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/errdefs"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

const defaultLimit = 20

// LedgerService owns the transaction log and the derived account balances.
// It is the only component that mutates them: every write is turned into an
// action and handed to the processor, which performs it inside a single
// storage transaction. Edits are not supported; callers delete and re-create.
type LedgerService struct {
	storage   *storage.Storage
	processor Processor
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store *storage.Storage, processor Processor) *LedgerService {
	return &LedgerService{storage: store, processor: processor}
}

// RecordTransaction validates the input, appends a transaction for the user,
// and folds its signed amount into the owning account's balance. Returns the
// created transaction.
func (s *LedgerService) RecordTransaction(ctx context.Context, userID uuid.UUID, input RecordTransactionInput) (*Transaction, error) {
	var invalid []string
	if !input.Amount.IsPositive() {
		invalid = append(invalid, "amount")
	}
	if strings.TrimSpace(input.Description) == "" {
		invalid = append(invalid, "description")
	}
	if input.CategoryID == uuid.Nil {
		invalid = append(invalid, "categoryId")
	}
	if input.AccountID == uuid.Nil {
		invalid = append(invalid, "accountId")
	}
	if !input.Type.Valid() {
		invalid = append(invalid, "transactionType")
	}
	if len(invalid) > 0 {
		return nil, &errdefs.ValidationError{Fields: invalid}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	action := &actions.RecordTransaction{
		UserID:      userID,
		AccountID:   input.AccountID,
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		Date:        date,
		Description: input.Description,
		Type:        input.Type,
		TaxRelevant: input.TaxRelevant,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	created := transactionFromStorage(action.Created)
	return &created, nil
}

// DeleteTransaction removes the user's transaction and reverses its effect on
// the owning account's balance.
func (s *LedgerService) DeleteTransaction(ctx context.Context, userID uuid.UUID, transactionID uuid.UUID) error {
	action := &actions.DeleteTransaction{
		UserID:        userID,
		TransactionID: transactionID,
	}
	return s.processor.Process(ctx, action)
}

// ListTransactions returns the user's transactions sorted by date descending,
// with category and account names resolved. A nil page returns the full
// history.
func (s *LedgerService) ListTransactions(ctx context.Context, userID uuid.UUID, page *Page) ([]Transaction, error) {
	var filter *transactions.TransactionFilter
	if page != nil {
		limit := page.Limit
		if limit <= 0 {
			limit = defaultLimit
		}
		pageNumber := page.Page
		if pageNumber < 1 {
			pageNumber = 1
		}
		filter = &transactions.TransactionFilter{
			Limit:  limit,
			Offset: (pageNumber - 1) * limit,
		}
	}

	rows, err := s.storage.Transactions.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	categoryRows, err := s.storage.Categories.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	accountRows, err := s.storage.Accounts.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	categoryNames := make(map[uuid.UUID]int, len(categoryRows))
	for i, category := range categoryRows {
		categoryNames[category.ID] = i
	}
	accountNames := make(map[uuid.UUID]string, len(accountRows))
	for _, account := range accountRows {
		accountNames[account.ID] = account.Name
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
		if idx, ok := categoryNames[row.CategoryID]; ok {
			converted[i].CategoryName = categoryRows[idx].Name
			converted[i].CategoryType = categoryRows[idx].Type
		}
		converted[i].AccountName = accountNames[row.AccountID]
	}

	return converted, nil
}
