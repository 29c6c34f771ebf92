package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/trace"

	"github.com/sheikh-saqib/transaction-balances-services/internal/ledger"
	"github.com/sheikh-saqib/transaction-balances-services/internal/models"
	"github.com/sheikh-saqib/transaction-balances-services/internal/tracing"
)

// Ledger is the part of *ledger.Ledger the HTTP layer needs
type Ledger interface {
	Create(ctx context.Context, req models.TransactionRequest) (models.Transaction, error)
	Get(ctx context.Context, id string) (models.Transaction, error)
	List(ctx context.Context) ([]models.Transaction, error)
	ListByAccount(ctx context.Context, accountId string) ([]models.Transaction, error)
}

type TransactionsHandler struct {
	responder
	ledger Ledger
}

func NewTransactionsHandler(l Ledger, logger *slog.Logger) *TransactionsHandler {
	return &TransactionsHandler{responder: responder{logger: logger}, ledger: l}
}

// Create handles POST /api/transactions
func (h *TransactionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, ErrorResponse{
			Code:    CodeValidation,
			Message: "invalid request body",
			TraceID: tracing.TraceID(r.Context()),
		})
		return
	}

	tx, err := h.ledger.Create(r.Context(), req)
	if err != nil {
		h.writeLedgerError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, tx)
}

// Get handles GET /api/transactions/{id}
func (h *TransactionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	tx, err := h.ledger.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeLedgerError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, tx)
}

// List handles GET /api/transactions
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	txs, err := h.ledger.List(r.Context())
	if err != nil {
		h.writeLedgerError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, nonNil(txs))
}

// ListByAccount handles GET /api/transactions/account/{accountId}
func (h *TransactionsHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	txs, err := h.ledger.ListByAccount(r.Context(), mux.Vars(r)["accountId"])
	if err != nil {
		h.writeLedgerError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, nonNil(txs))
}

func (h *TransactionsHandler) writeLedgerError(w http.ResponseWriter, r *http.Request, err error) {
	resp := ErrorResponse{
		Message: err.Error(),
		TraceID: tracing.TraceID(r.Context()),
	}

	var shortfall *ledger.InsufficientFundsError
	switch {
	case errors.Is(err, ledger.ErrInvalidRequest):
		resp.Code = CodeValidation
		h.writeError(w, r, http.StatusBadRequest, resp)
	case errors.As(err, &shortfall):
		resp.Code = CodeInsufficientFunds
		resp.TransactionID = shortfall.TransactionID
		h.writeError(w, r, http.StatusBadRequest, resp)
	case errors.Is(err, ledger.ErrTransactionNotFound):
		resp.Code = CodeNotFound
		h.writeError(w, r, http.StatusNotFound, resp)
	case errors.Is(err, ledger.ErrBalanceUnavailable):
		resp.Code = CodeBalanceUnavailable
		resp.Message = "balance service unavailable, transaction not recorded"
		h.writeError(w, r, http.StatusServiceUnavailable, resp)
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		resp.Code = CodeInternal
		resp.Message = "internal server error"
		h.writeError(w, r, http.StatusInternalServerError, resp)
	}
}

func nonNil(txs []models.Transaction) []models.Transaction {
	if txs == nil {
		return []models.Transaction{}
	}
	return txs
}

// NewTransactionsRouter wires the transaction service routes
func NewTransactionsRouter(h *TransactionsHandler, tracer trace.Tracer, logger *slog.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(tracing.Middleware(tracer, logger))

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)

	r.HandleFunc("/api/transactions", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/transactions", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/transactions/account/{accountId}", h.ListByAccount).Methods(http.MethodGet)
	r.HandleFunc("/api/transactions/{id}", h.Get).Methods(http.MethodGet)
	return r
}

var _ Ledger = (*ledger.Ledger)(nil)
