package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	interfaces "github.com/sheikh-saqib/transaction-balances-services/internal/interfaces"
	"github.com/sheikh-saqib/transaction-balances-services/internal/models"
	"github.com/sheikh-saqib/transaction-balances-services/internal/models/events"
)

// Ledger records transactions and decides, once and synchronously, whether each
// one completes or fails.
//
// The funds check and the insert are not performed under a common lock: the
// balance oracle is stateless, so two concurrent debits against the same
// account can both pass the check.
type Ledger struct {
	store     interfaces.TransactionStore
	oracle    interfaces.BalanceOracle
	publisher interfaces.EventPublisher // optional, nil disables events
	topic     string
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

type Option func(*Ledger)

func WithPublisher(publisher interfaces.EventPublisher, topic string) Option {
	return func(l *Ledger) {
		l.publisher = publisher
		l.topic = topic
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithIDGenerator replaces the uuid generator, mostly for tests
func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) {
		l.newID = newID
	}
}

func NewLedger(store interfaces.TransactionStore, oracle interfaces.BalanceOracle, opts ...Option) *Ledger {
	l := &Ledger{
		store:  store,
		oracle: oracle,
		topic:  events.TransactionRecordedTopic,
		logger: slog.Default(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Create validates req, runs the funds check for debits and records exactly one
// transaction.
//
// When the available balance is below the amount a FAILED transaction is recorded
// and an *InsufficientFundsError naming it is returned. When the balance cannot be
// fetched at all nothing is recorded and the error wraps ErrBalanceUnavailable.
func (l *Ledger) Create(ctx context.Context, req models.TransactionRequest) (models.Transaction, error) {
	if err := req.Validate(); err != nil {
		return models.Transaction{}, err
	}

	status := models.TransactionStatusCompleted
	var shortfall *InsufficientFundsError

	// Only payments and withdrawals take money out, deposits and refunds skip the check
	if req.Type.DebitsFunds() {
		balance, err := l.oracle.GetBalance(ctx, req.AccountID)
		if err != nil {
			l.logger.ErrorContext(ctx, "balance check failed",
				"accountId", req.AccountID, "type", req.Type, "error", err)
			if errors.Is(err, ErrBalanceUnavailable) {
				return models.Transaction{}, err
			}
			return models.Transaction{}, fmt.Errorf("%w: %v", ErrBalanceUnavailable, err)
		}

		if balance.AvailableBalance.LessThan(*req.Amount) {
			status = models.TransactionStatusFailed
			shortfall = &InsufficientFundsError{
				AvailableBalance:  balance.AvailableBalance,
				BalanceCurrency:   balance.Currency,
				RequestedAmount:   *req.Amount,
				RequestedCurrency: req.Currency,
			}
		}
	}

	now := l.now()
	tx := models.Transaction{
		ID:          l.newID(),
		AccountID:   req.AccountID,
		Amount:      *req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		Type:        req.Type,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := l.store.SaveTransaction(ctx, tx); err != nil {
		return models.Transaction{}, fmt.Errorf("record transaction: %w", err)
	}
	l.publish(ctx, tx)

	if shortfall != nil {
		shortfall.TransactionID = tx.ID
		l.logger.WarnContext(ctx, "transaction failed: insufficient funds",
			"transactionId", tx.ID, "accountId", tx.AccountID,
			"amount", tx.Amount.String(), "available", shortfall.AvailableBalance.String())
		return tx, shortfall
	}

	l.logger.InfoContext(ctx, "transaction completed",
		"transactionId", tx.ID, "accountId", tx.AccountID, "type", tx.Type, "amount", tx.Amount.String())
	return tx, nil
}

func (l *Ledger) Get(ctx context.Context, id string) (models.Transaction, error) {
	tx, err := l.store.GetTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			return models.Transaction{}, fmt.Errorf("%w with id: %s", ErrTransactionNotFound, id)
		}
		return models.Transaction{}, err
	}
	return tx, nil
}

func (l *Ledger) List(ctx context.Context) ([]models.Transaction, error) {
	return l.store.GetTransactions(ctx)
}

func (l *Ledger) ListByAccount(ctx context.Context, accountId string) ([]models.Transaction, error) {
	return l.store.GetTransactionsByAccount(ctx, accountId)
}

// publish is best effort: the transaction is already recorded, so a broker
// failure is logged and the caller still gets its result
func (l *Ledger) publish(ctx context.Context, tx models.Transaction) {
	if l.publisher == nil {
		return
	}
	if err := l.publisher.Publish(ctx, l.topic, events.NewTransactionRecorded(tx)); err != nil {
		l.logger.ErrorContext(ctx, "failed to publish transaction event",
			"transactionId", tx.ID, "topic", l.topic, "error", err)
	}
}
