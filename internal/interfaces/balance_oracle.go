package interfaces

import (
	"context"

	"github.com/sheikh-saqib/transaction-balances-services/internal/models"
)

// BalanceOracle answers how much money an account can spend right now
type BalanceOracle interface {
	GetBalance(ctx context.Context, accountId string) (models.AccountBalance, error)
}
