package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/transaction-balances-services/internal/models"
	"github.com/sheikh-saqib/transaction-balances-services/internal/storage"
)

var (
	// ErrInvalidRequest is returned before any ledger work when a request field is missing or malformed
	ErrInvalidRequest = models.ErrInvalidRequest

	// ErrInsufficientFunds is matched by *InsufficientFundsError
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrTransactionNotFound is returned by Get for ids the ledger never recorded
	ErrTransactionNotFound = storage.ErrTransactionNotFound

	// ErrBalanceUnavailable means the funds check could not be made at all.
	// Nothing is recorded when it is returned.
	ErrBalanceUnavailable = errors.New("balance service unavailable")
)

// InsufficientFundsError is returned when a debit exceeds the available balance.
// The attempt is still recorded as FAILED under TransactionID.
type InsufficientFundsError struct {
	TransactionID     string
	AvailableBalance  decimal.Decimal
	BalanceCurrency   string
	RequestedAmount   decimal.Decimal
	RequestedCurrency string
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("Insufficient funds for transaction. Available balance: %s %s, Transaction amount: %s %s, Transaction ID: %s",
		formatAmount(e.AvailableBalance), e.BalanceCurrency,
		formatAmount(e.RequestedAmount), e.RequestedCurrency,
		e.TransactionID)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// formatAmount renders at least two decimal places, more when the amount carries them
func formatAmount(d decimal.Decimal) string {
	if d.Exponent() < -2 {
		return d.String()
	}
	return d.StringFixed(2)
}
