package tracing

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Headers used to carry the trace between the two services
const (
	TraceIDHeader = "X-B3-TraceId"
	SpanIDHeader  = "X-B3-SpanId"
)

// NewProvider builds the tracer provider for a service. With exportStdout the
// finished spans are written to stdout, otherwise they are only used for ids.
func NewProvider(serviceName, serviceVersion string, exportStdout bool) (*sdktrace.TracerProvider, error) {
	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(serviceVersion),
	))
	if err != nil {
		return nil, fmt.Errorf("build trace resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if exportStdout {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(os.Stdout))
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithSyncer(exporter))
	}
	return sdktrace.NewTracerProvider(opts...), nil
}

// Extract returns ctx carrying the remote span described by the B3 headers,
// or ctx unchanged when the trace id is absent or malformed. A usable trace id
// is continued even without a span id; the parent span id is then random.
func Extract(ctx context.Context, header http.Header) context.Context {
	traceID, err := trace.TraceIDFromHex(header.Get(TraceIDHeader))
	if err != nil {
		return ctx
	}
	spanID, err := trace.SpanIDFromHex(header.Get(SpanIDHeader))
	if err != nil {
		spanID = randomSpanID()
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})
	return trace.ContextWithRemoteSpanContext(ctx, sc)
}

func randomSpanID() trace.SpanID {
	var id trace.SpanID
	for !id.IsValid() {
		binary.BigEndian.PutUint64(id[:], rand.Uint64())
	}
	return id
}

// Inject writes the span carried by ctx into header
func Inject(ctx context.Context, header http.Header) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return
	}
	header.Set(TraceIDHeader, sc.TraceID().String())
	header.Set(SpanIDHeader, sc.SpanID().String())
}

// TraceID returns the hex trace id carried by ctx, or "" without a valid span
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}

// LogHandler decorates every record with the traceId and spanId of its context
type LogHandler struct {
	slog.Handler
}

func NewLogHandler(next slog.Handler) *LogHandler {
	return &LogHandler{Handler: next}
}

func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("traceId", sc.TraceID().String()),
			slog.String("spanId", sc.SpanID().String()),
		)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	return &LogHandler{Handler: h.Handler.WithGroup(name)}
}
