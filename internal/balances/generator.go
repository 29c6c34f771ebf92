package balances

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/transaction-balances-services/internal/models"
)

const (
	DefaultCurrency = "USD"

	minAvailable   = 10000
	availableRange = 90000

	// current exceeds available by k cents, k in [0, maxUncleared)
	maxUncleared = 1000
)

// Generator fabricates account balances. It stands in for a real ledger query
// and accepts any account number.
type Generator struct {
	mu  sync.Mutex // *rand.Rand is not safe for concurrent use
	rnd *rand.Rand
	now func() time.Time
}

func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.NewPCG(rand.Uint64(), rand.Uint64()), time.Now)
}

// NewGeneratorWithSource makes a deterministic generator for tests
func NewGeneratorWithSource(src rand.Source, now func() time.Time) *Generator {
	return &Generator{
		rnd: rand.New(src),
		now: now,
	}
}

// Balance returns an available balance in [10000.00, 100000.00] and a current
// balance 0.00 to 9.99 above it, both with two decimal places
func (g *Generator) Balance(accountNumber string) models.AccountBalance {
	g.mu.Lock()
	raw := minAvailable + g.rnd.Float64()*availableRange
	cents := g.rnd.IntN(maxUncleared)
	g.mu.Unlock()

	// Round is half away from zero, which is half-up for positive amounts
	available := decimal.NewFromFloat(raw).Round(2)
	current := available.Add(decimal.New(int64(cents), -2))

	return models.AccountBalance{
		AccountNumber:    accountNumber,
		AvailableBalance: available,
		CurrentBalance:   current,
		Currency:         DefaultCurrency,
		LastUpdated:      g.now(),
	}
}
