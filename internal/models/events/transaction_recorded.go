package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/transaction-balances-services/internal/models"
)

const TransactionRecordedTopic = "transaction_recorded"

// TransactionRecorded is emitted once per transaction inserted into the ledger,
// whatever its status
type TransactionRecorded struct {
	TransactionID string                   `json:"transactionId"`
	AccountID     string                   `json:"accountId"`
	Amount        decimal.Decimal          `json:"amount"`
	Currency      string                   `json:"currency"`
	Type          models.TransactionType   `json:"type"`
	Status        models.TransactionStatus `json:"status"`
	OccurredAt    time.Time                `json:"occurredAt"`
}

func NewTransactionRecorded(tx models.Transaction) TransactionRecorded {
	return TransactionRecorded{
		TransactionID: tx.ID,
		AccountID:     tx.AccountID,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		Type:          tx.Type,
		Status:        tx.Status,
		OccurredAt:    tx.CreatedAt,
	}
}

// PartitionKey keeps every event of an account on one partition
func (e TransactionRecorded) PartitionKey() string {
	return e.AccountID
}
