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
	"github.com/sheikh-saqib/transaction-balances-services/internal/server"
	"github.com/sheikh-saqib/transaction-balances-services/internal/tracing"
)

const (
	serviceName    = "balances-service"
	serviceVersion = "1.0.0"
)

func main() {
	cfg := config.LoadConfig("8081")

	logger := server.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	decimal.MarshalJSONWithoutQuotes = true

	tp, err := tracing.NewProvider(serviceName, serviceVersion, cfg.TraceStdout)
	if err != nil {
		slog.Error("Failed to set up tracing", "error", err)
		os.Exit(1)
	}
	defer tp.Shutdown(context.Background())

	handler := api.NewBalancesHandler(balances.NewGenerator(), logger)
	router := api.NewBalancesRouter(handler, tp.Tracer(serviceName), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting balances service", "env", cfg.Env, "port", cfg.Port)
	if err := server.Run(ctx, server.New(cfg.Port, router), cfg.ShutdownTimeout, logger); err != nil {
		slog.Error("Server stopped", "error", err)
		return
	}
	slog.Info("Server exited successfully")
}
