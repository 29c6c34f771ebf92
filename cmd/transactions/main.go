package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/transaction-balances-services/internal/api"
	"github.com/sheikh-saqib/transaction-balances-services/internal/balances"
	"github.com/sheikh-saqib/transaction-balances-services/internal/config"
	"github.com/sheikh-saqib/transaction-balances-services/internal/events/kafka"
	"github.com/sheikh-saqib/transaction-balances-services/internal/events/logpub"
	interfaces "github.com/sheikh-saqib/transaction-balances-services/internal/interfaces"
	"github.com/sheikh-saqib/transaction-balances-services/internal/ledger"
	"github.com/sheikh-saqib/transaction-balances-services/internal/server"
	"github.com/sheikh-saqib/transaction-balances-services/internal/storage/memory"
	"github.com/sheikh-saqib/transaction-balances-services/internal/tracing"
)

const (
	serviceName    = "transaction-service"
	serviceVersion = "1.0.0"
)

func main() {
	cfg := config.LoadConfig("8080")

	logger := server.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	// amounts go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	tp, err := tracing.NewProvider(serviceName, serviceVersion, cfg.TraceStdout)
	if err != nil {
		slog.Error("Failed to set up tracing", "error", err)
		os.Exit(1)
	}
	defer tp.Shutdown(context.Background())

	var publisher interfaces.EventPublisher = logpub.NewPublisher(logger)
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafka.NewPublisher(cfg.KafkaBrokers)
		defer kp.Close()
		publisher = kp
		slog.Info("Publishing events to kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	var store interfaces.TransactionStore = memory.NewMemoryTransactionStore()
	oracle := balances.NewClient(cfg.BalancesServiceURL, cfg.BalancesTimeout)

	ledgerService := ledger.NewLedger(store, oracle,
		ledger.WithPublisher(publisher, cfg.KafkaTopic),
		ledger.WithLogger(logger),
	)

	handler := api.NewTransactionsHandler(ledgerService, logger)
	router := api.NewTransactionsRouter(handler, tp.Tracer(serviceName), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting transaction service", "env", cfg.Env, "port", cfg.Port,
		"balancesServiceUrl", cfg.BalancesServiceURL, "balancesTimeout", cfg.BalancesTimeout)
	if err := server.Run(ctx, server.New(cfg.Port, router), cfg.ShutdownTimeout, logger); err != nil {
		slog.Error("Server stopped", "error", err)
		return
	}
	slog.Info("Server exited successfully")
}
