package transaction

import (
	"time"

	"github.com/carson-networks/finance-server/internal/service"
)

// Transaction is the API response model for a transaction. Category and
// account names are resolved on list reads and omitted otherwise.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	AccountID       string `json:"accountId" doc:"Account UUID"`
	AccountName     string `json:"accountName,omitempty" doc:"Resolved account name"`
	CategoryID      string `json:"categoryId" doc:"Category UUID"`
	CategoryName    string `json:"categoryName,omitempty" doc:"Resolved category name"`
	CategoryType    string `json:"categoryType,omitempty" doc:"Resolved category type"`
	Amount          string `json:"amount" doc:"Decimal amount, non-negative magnitude"`
	Date            string `json:"date" doc:"RFC3339 transaction date"`
	Description     string `json:"description" doc:"Description of the transaction"`
	TransactionType string `json:"transactionType" doc:"income or expense"`
	TaxRelevant     bool   `json:"taxRelevant" doc:"Marked for fiscal subtotals"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:              tx.ID.String(),
		AccountID:       tx.AccountID.String(),
		AccountName:     tx.AccountName,
		CategoryID:      tx.CategoryID.String(),
		CategoryName:    tx.CategoryName,
		CategoryType:    string(tx.CategoryType),
		Amount:          tx.Amount.String(),
		Date:            tx.Date.Format(time.RFC3339),
		Description:     tx.Description,
		TransactionType: string(tx.Type),
		TaxRelevant:     tx.TaxRelevant,
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
	}
}
