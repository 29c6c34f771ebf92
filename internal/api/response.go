package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error codes returned in ErrorResponse.Code
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodeNotFound           = "NOT_FOUND"
	CodeBalanceUnavailable = "BALANCE_SERVICE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"traceId,omitempty"`
	// set only when a failed attempt was still recorded
	TransactionID string `json:"transactionId,omitempty"`
}

// responder writes JSON bodies and is embedded by the handlers
type responder struct {
	logger *slog.Logger
}

func (rs responder) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		rs.logger.ErrorContext(r.Context(), "failed to encode response", "path", r.URL.Path, "error", err)
	}
}

func (rs responder) writeError(w http.ResponseWriter, r *http.Request, status int, body ErrorResponse) {
	rs.writeJSON(w, r, status, body)
}

func (rs responder) health(w http.ResponseWriter, r *http.Request) {
	rs.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
