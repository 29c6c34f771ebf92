package tracing

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	incomingTraceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	incomingSpanID  = "00f067aa0ba902b7"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExtractInjectRoundTrip(t *testing.T) {
	in := http.Header{}
	in.Set(TraceIDHeader, incomingTraceID)
	in.Set(SpanIDHeader, incomingSpanID)

	ctx := Extract(context.Background(), in)
	if got := TraceID(ctx); got != incomingTraceID {
		t.Fatalf("TraceID = %q, want %q", got, incomingTraceID)
	}

	out := http.Header{}
	Inject(ctx, out)
	if out.Get(TraceIDHeader) != incomingTraceID || out.Get(SpanIDHeader) != incomingSpanID {
		t.Errorf("injected %v", out)
	}
}

func TestExtractIgnoresMalformedHeaders(t *testing.T) {
	tests := []struct {
		name    string
		traceID string
		spanID  string
	}{
		{"empty", "", ""},
		{"span only", "", incomingSpanID},
		{"not hex", "zzzz", incomingSpanID},
		{"all zero", "00000000000000000000000000000000", incomingSpanID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			h.Set(TraceIDHeader, tt.traceID)
			h.Set(SpanIDHeader, tt.spanID)

			ctx := Extract(context.Background(), h)
			if trace.SpanContextFromContext(ctx).IsValid() {
				t.Errorf("expected no span context")
			}
		})
	}
}

func TestExtractContinuesTraceWithoutSpanID(t *testing.T) {
	for name, spanID := range map[string]string{
		"missing span": "",
		"bad span":     "not-a-span",
		"zero span":    "0000000000000000",
	} {
		t.Run(name, func(t *testing.T) {
			h := http.Header{}
			h.Set(TraceIDHeader, incomingTraceID)
			h.Set(SpanIDHeader, spanID)

			sc := trace.SpanContextFromContext(Extract(context.Background(), h))
			if !sc.IsValid() || !sc.IsRemote() {
				t.Fatalf("expected a valid remote span context, got %+v", sc)
			}
			if sc.TraceID().String() != incomingTraceID {
				t.Errorf("trace id = %s, want %s", sc.TraceID(), incomingTraceID)
			}
		})
	}
}

func TestInjectWithoutSpanLeavesHeaderEmpty(t *testing.T) {
	h := http.Header{}
	Inject(context.Background(), h)
	if len(h) != 0 {
		t.Errorf("header = %v, want empty", h)
	}
}

func TestMiddlewareContinuesIncomingTrace(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	var seenTraceID string
	handler := Middleware(tp.Tracer("test"), discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = TraceID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set(TraceIDHeader, incomingTraceID)
	req.Header.Set(SpanIDHeader, incomingSpanID)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
	if seenTraceID != incomingTraceID {
		t.Errorf("handler saw trace %q, want %q", seenTraceID, incomingTraceID)
	}
	if got := rec.Header().Get(TraceIDHeader); got != incomingTraceID {
		t.Errorf("response trace header = %q, want %q", got, incomingTraceID)
	}
	if got := rec.Header().Get(SpanIDHeader); got == "" || got == incomingSpanID {
		t.Errorf("response span header = %q, want a new child span id", got)
	}
}

func TestMiddlewareStartsNewTrace(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	handler := Middleware(tp.Tracer("test"), discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if _, err := trace.TraceIDFromHex(rec.Header().Get(TraceIDHeader)); err != nil {
		t.Errorf("response trace header %q: %v", rec.Header().Get(TraceIDHeader), err)
	}
	if _, err := trace.SpanIDFromHex(rec.Header().Get(SpanIDHeader)); err != nil {
		t.Errorf("response span header %q: %v", rec.Header().Get(SpanIDHeader), err)
	}
}

func TestLogHandlerAddsTraceAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(slog.NewJSONHandler(&buf, nil)))

	h := http.Header{}
	h.Set(TraceIDHeader, incomingTraceID)
	h.Set(SpanIDHeader, incomingSpanID)
	ctx := Extract(context.Background(), h)

	logger.With("service", "test").InfoContext(ctx, "hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if line["traceId"] != incomingTraceID || line["spanId"] != incomingSpanID {
		t.Errorf("log line = %v", line)
	}
	if line["service"] != "test" {
		t.Errorf("attributes from With were lost: %v", line)
	}
}
