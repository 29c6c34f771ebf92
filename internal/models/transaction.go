package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tells the ledger which way money moves for a transaction
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypePayment    TransactionType = "PAYMENT"
	TransactionTypeRefund     TransactionType = "REFUND"
)

// Valid reports whether t is one of the known transaction types
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypePayment, TransactionTypeRefund:
		return true
	}
	return false
}

// DebitsFunds reports whether the type takes money out of the account
// and therefore needs a funds check before it can complete
func (t TransactionType) DebitsFunds() bool {
	return t == TransactionTypePayment || t == TransactionTypeWithdrawal
}

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction is a recorded movement of money against a single account.
// It is created directly in its final status and never changes afterwards.
type Transaction struct {
	ID          string            `json:"id"`
	AccountID   string            `json:"accountId"`
	Amount      decimal.Decimal   `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description,omitempty"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// TransactionRequest is the client's intent to record a transaction
type TransactionRequest struct {
	AccountID   string           `json:"accountId"`
	Amount      *decimal.Decimal `json:"amount"`
	Currency    string           `json:"currency"`
	Description string           `json:"description,omitempty"`
	Type        TransactionType  `json:"type"`
}

// ErrInvalidRequest marks a request that failed field validation
var ErrInvalidRequest = errors.New("invalid transaction request")

// ValidationError carries the message of the first field that failed
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// Validate checks the request fields in the order a client would fill them in
func (r TransactionRequest) Validate() error {
	if strings.TrimSpace(r.AccountID) == "" {
		return &ValidationError{Field: "accountId", Message: "Account ID is required"}
	}
	if r.Amount == nil {
		return &ValidationError{Field: "amount", Message: "Amount is required"}
	}
	if !r.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Message: "Amount must be positive"}
	}
	if strings.TrimSpace(r.Currency) == "" {
		return &ValidationError{Field: "currency", Message: "Currency is required"}
	}
	if r.Type == "" {
		return &ValidationError{Field: "type", Message: "Transaction type is required"}
	}
	if !r.Type.Valid() {
		return &ValidationError{Field: "type", Message: "Transaction type must be one of DEPOSIT, WITHDRAWAL, PAYMENT, REFUND"}
	}
	return nil
}
