package httpapi

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("club-registry/internal/interfaces/httpapi")

// startHandlerSpan opens a child of the otelhttp request span. Untraced
// routes such as /healthz have no parent and get a no-op span back.
func startHandlerSpan(ctx context.Context, handler string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return apiTracer.Start(ctx, "httpapi.Handler."+handler)
}
