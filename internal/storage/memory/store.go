package memory

import (
	"context"
	"fmt"
	"sync"

	interfaces "github.com/sheikh-saqib/transaction-balances-services/internal/interfaces"
	"github.com/sheikh-saqib/transaction-balances-services/internal/models"
	"github.com/sheikh-saqib/transaction-balances-services/internal/storage"
)

// MemoryTransactionStore is an in-memory implementation of interfaces.TransactionStore.
// Records live for the lifetime of the process only.
type MemoryTransactionStore struct {
	mu           sync.RWMutex                  // guards transactions and order
	transactions map[string]models.Transaction // transaction id -> record
	order        []string                      // ids in insertion order, for stable listing
}

// NewMemoryTransactionStore creates and returns an empty MemoryTransactionStore
func NewMemoryTransactionStore() *MemoryTransactionStore {
	return &MemoryTransactionStore{
		transactions: make(map[string]models.Transaction),
		order:        make([]string, 0),
	}
}

// SaveTransaction inserts tx if its id is not taken yet.
// Existing records are never overwritten.
func (m *MemoryTransactionStore) SaveTransaction(ctx context.Context, tx models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.transactions[tx.ID]; exists {
		return fmt.Errorf("save %s: %w", tx.ID, storage.ErrDuplicateTransaction)
	}
	m.transactions[tx.ID] = tx
	m.order = append(m.order, tx.ID)
	return nil
}

func (m *MemoryTransactionStore) GetTransaction(ctx context.Context, id string) (models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tx, exists := m.transactions[id]
	if !exists {
		return models.Transaction{}, storage.ErrTransactionNotFound
	}
	return tx, nil
}

// GetTransactions returns a copy of all transactions in insertion order
func (m *MemoryTransactionStore) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.Transaction, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.transactions[id])
	}
	return result, nil
}

func (m *MemoryTransactionStore) GetTransactionsByAccount(ctx context.Context, accountId string) ([]models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.Transaction, 0)
	for _, id := range m.order {
		if tx := m.transactions[id]; tx.AccountID == accountId {
			result = append(result, tx)
		}
	}
	return result, nil
}

// Compile-time check: ensure MemoryTransactionStore implements TransactionStore
var _ interfaces.TransactionStore = (*MemoryTransactionStore)(nil)
