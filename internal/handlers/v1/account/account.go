package account

import (
	"time"

	"github.com/carson-networks/finance-server/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID             string `json:"id" doc:"Account UUID"`
	Name           string `json:"name" doc:"Account name"`
	InitialBalance string `json:"initialBalance" doc:"Decimal balance at creation"`
	CurrentBalance string `json:"currentBalance" doc:"Decimal running balance"`
	CreatedAt      string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(account service.Account) Account {
	return Account{
		ID:             account.ID.String(),
		Name:           account.Name,
		InitialBalance: account.InitialBalance.String(),
		CurrentBalance: account.CurrentBalance.String(),
		CreatedAt:      account.CreatedAt.Format(time.RFC3339),
	}
}
