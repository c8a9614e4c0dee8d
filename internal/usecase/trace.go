package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("club-registry/internal/usecase")

// startUsecaseSpan only opens a child span. Calls without a sampled parent
// (tests, background work) get the context's no-op span back.
func startUsecaseSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if op == "" || !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return usecaseTracer.Start(ctx, "usecase.ClubService."+op, trace.WithAttributes(attrs...))
}

func clubIDAttr(id int64) attribute.KeyValue {
	return attribute.Int64("club.id", id)
}

// failSpan marks span as failed for storage errors only; client errors
// such as not found or conflict are expected outcomes.
func failSpan(span trace.Span, err error) error {
	if err != nil && isStorageError(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "storage failure")
	}
	return err
}
