package api

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/sheikh-saqib/transaction-balances-services/internal/balances"
	"github.com/sheikh-saqib/transaction-balances-services/internal/models"
	"github.com/sheikh-saqib/transaction-balances-services/internal/tracing"
)

func newBalancesServer(t *testing.T) http.Handler {
	t.Helper()
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { tp.Shutdown(context.Background()) })

	gen := balances.NewGeneratorWithSource(rand.NewPCG(3, 4), time.Now)
	return NewBalancesRouter(NewBalancesHandler(gen, testLogger()), tp.Tracer("test"), testLogger())
}

func TestGetBalance(t *testing.T) {
	srv := newBalancesServer(t)

	rec := do(t, srv, http.MethodGet, "/api/balances/12345678", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	if rec.Header().Get(tracing.TraceIDHeader) == "" {
		t.Errorf("response carries no trace id")
	}

	b := decode[models.AccountBalance](t, rec)
	if b.AccountNumber != "12345678" || b.Currency != "USD" {
		t.Errorf("unexpected balance %+v", b)
	}
	if b.AvailableBalance.LessThan(decimal.NewFromInt(10000)) || b.AvailableBalance.GreaterThan(decimal.NewFromInt(100000)) {
		t.Errorf("available = %s out of range", b.AvailableBalance)
	}
	if b.CurrentBalance.LessThan(b.AvailableBalance) {
		t.Errorf("current %s below available %s", b.CurrentBalance, b.AvailableBalance)
	}
	if b.LastUpdated.IsZero() {
		t.Errorf("lastUpdated not set")
	}
}

func TestGetBalanceRendersTwoDecimals(t *testing.T) {
	srv := newBalancesServer(t)
	twoDecimals := regexp.MustCompile(`^\d+\.\d{2}$`)

	for i := 0; i < 500; i++ {
		rec := do(t, srv, http.MethodGet, "/api/balances/ACC1", "")

		var raw map[string]json.RawMessage
		if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
			t.Fatalf("decode: %v", err)
		}
		for _, field := range []string{"availableBalance", "currentBalance"} {
			if v := string(raw[field]); !twoDecimals.MatchString(v) {
				t.Fatalf("%s = %s, want a number with two decimal places", field, v)
			}
		}
	}
}

func TestGetBalanceAnyAccount(t *testing.T) {
	srv := newBalancesServer(t)

	for _, account := range []string{"ACC1", "0", "does-not-exist"} {
		rec := do(t, srv, http.MethodGet, "/api/balances/"+account, "")
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", account, rec.Code)
			continue
		}
		if b := decode[models.AccountBalance](t, rec); b.AccountNumber != account {
			t.Errorf("account = %q, want %q", b.AccountNumber, account)
		}
	}
}

func TestHealth(t *testing.T) {
	for name, srv := range map[string]http.Handler{
		"balances":     newBalancesServer(t),
		"transactions": newTransactionsServer(t, &stubOracle{}),
	} {
		rec := do(t, srv, http.MethodGet, "/health", "")
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", name, rec.Code)
		}
		if got := decode[map[string]string](t, rec); got["status"] != "ok" {
			t.Errorf("%s: body = %v", name, got)
		}
	}
}
