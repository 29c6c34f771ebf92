package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/trace"

	"github.com/sheikh-saqib/transaction-balances-services/internal/models"
	"github.com/sheikh-saqib/transaction-balances-services/internal/tracing"
)

// BalanceSource produces the balance of an account on demand
type BalanceSource interface {
	Balance(accountNumber string) models.AccountBalance
}

type BalancesHandler struct {
	responder
	source BalanceSource
}

func NewBalancesHandler(source BalanceSource, logger *slog.Logger) *BalancesHandler {
	return &BalancesHandler{responder: responder{logger: logger}, source: source}
}

// GetBalance handles GET /api/balances/{accountNumber}
func (h *BalancesHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountNumber := mux.Vars(r)["accountNumber"]

	balance := h.source.Balance(accountNumber)
	h.logger.DebugContext(r.Context(), "balance generated",
		"accountNumber", accountNumber, "available", balance.AvailableBalance.String())

	h.writeJSON(w, r, http.StatusOK, balance)
}

// NewBalancesRouter wires the balances service routes
func NewBalancesRouter(h *BalancesHandler, tracer trace.Tracer, logger *slog.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(tracing.Middleware(tracer, logger))

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.HandleFunc("/api/balances/{accountNumber}", h.GetBalance).Methods(http.MethodGet)
	return r
}
