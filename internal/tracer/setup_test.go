package tracer

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

func newTestTracer(t *testing.T) *Tracer {
	t.Helper()
	ctrl := gomock.NewController(t)
	// Export disabled: NewClient must not log anything, so the strict mock
	// carries no expectations.
	return NewClient(Config{ServiceName: "codebert-server-test", AppEnv: "test"}, NewMockLogger(ctrl))
}

func TestStartSpanProducesValidSpan(t *testing.T) {
	trc := newTestTracer(t)

	ctx, span := trc.StartSpan(context.Background(), "embed")
	defer span.End()

	if !span.SpanContext().IsValid() {
		t.Fatal("expected a valid span context")
	}

	_, child := trc.StartSpan(ctx, "tokenize")
	defer child.End()

	if child.SpanContext().TraceID() != span.SpanContext().TraceID() {
		t.Error("child span should share the parent's trace id")
	}
	if child.SpanContext().SpanID() == span.SpanContext().SpanID() {
		t.Error("child span should have its own span id")
	}
}

func TestCarrierRoundTrip(t *testing.T) {
	trc := newTestTracer(t)

	ctx, span := trc.StartSpan(context.Background(), "embed")
	defer span.End()

	carrier := trc.GetCarrier(ctx)
	if carrier["traceparent"] == "" {
		t.Fatal("carrier missing traceparent header")
	}

	restored := trc.SetCarrierOnContext(context.Background(), carrier)
	restoredCtx := trace.SpanContextFromContext(restored)

	if !restoredCtx.IsValid() {
		t.Fatal("restored context has no valid span context")
	}
	if restoredCtx.TraceID() != span.SpanContext().TraceID() {
		t.Errorf("trace id not preserved: got %s, want %s",
			restoredCtx.TraceID(), span.SpanContext().TraceID())
	}
}

func TestRecordErrorAndAttributes(t *testing.T) {
	trc := newTestTracer(t)

	_, span := trc.StartSpan(context.Background(), "embed-batch")
	defer span.End()

	trc.RecordErrorOnSpan(span, errors.New("tokenizer failure"))

	trc.SetAttributes(span, map[string]interface{}{
		"endpoint":    "/embed/batch",
		"texts":       3,
		"elapsed_ms":  int64(12),
		"ratio":       0.5,
		"cached":      false,
		"unsupported": struct{ A int }{A: 1},
	})

	trc.SetAttributes(span, nil)
}
