package interfaces

import (
	"context"

	"github.com/sheikh-saqib/transaction-balances-services/internal/models"
)

// TransactionStore holds recorded transactions. Implementations must be safe
// for concurrent use and must never overwrite an existing id.
type TransactionStore interface {
	SaveTransaction(ctx context.Context, tx models.Transaction) error
	GetTransaction(ctx context.Context, id string) (models.Transaction, error)
	GetTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransactionsByAccount(ctx context.Context, accountId string) ([]models.Transaction, error)
}
