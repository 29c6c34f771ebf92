package storage

import "errors"

var (
	// ErrTransactionNotFound is returned when no transaction has the requested id
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateTransaction is returned when a transaction id is already taken
	ErrDuplicateTransaction = errors.New("transaction already exists")
)
