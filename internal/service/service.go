package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// Processor runs a ledger action to completion. Satisfied by
// *operator.OperatorDelegator.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Ledger     *LedgerService
	Reporting  *ReportingService
	Accounts   *AccountService
	Categories *CategoryService
}

// NewService creates a new Service with the given storage and ledger
// processor.
func NewService(store *storage.Storage, processor Processor) *Service {
	return &Service{
		Ledger:     NewLedgerService(store, processor),
		Reporting:  NewReportingService(store),
		Accounts:   NewAccountService(store),
		Categories: NewCategoryService(store),
	}
}
