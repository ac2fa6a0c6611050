package trace

import (
	"context"
	"encoding/hex"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// OTLPExporter exports session traces to an OTLP/HTTP endpoint
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPExporter creates an exporter for endpoint.
// Returns nil if endpoint is empty (disabled).
func NewOTLPExporter(ctx context.Context, endpoint, serviceName string) (*OTLPExporter, error) {
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating otlp exporter: %w", err)
	}

	if serviceName == "" {
		serviceName = "transit"
	}
	res := resource.NewWithAttributes("",
		attribute.String("service.name", serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &OTLPExporter{
		provider: provider,
		tracer:   provider.Tracer("transit/ui"),
	}, nil
}

// ExportTrace exports a completed Trace to OTLP
func (e *OTLPExporter) ExportTrace(ctx context.Context, t *Trace) error {
	if e == nil || t == nil || t.RootSpan == nil {
		return nil
	}

	traceID, err := hexToTraceID(t.ID)
	if err != nil {
		return err
	}

	traceCtx := oteltrace.ContextWithSpanContext(ctx, oteltrace.NewSpanContext(oteltrace.SpanContextConfig{
		TraceID:    traceID,
		TraceFlags: oteltrace.FlagsSampled,
	}))

	e.exportSpan(traceCtx, t.RootSpan, oteltrace.SpanContext{})
	return nil
}

// exportSpan recursively exports a span and its children.
// The SDK assigns new span IDs; trace ID, nesting and timing are kept.
func (e *OTLPExporter) exportSpan(ctx context.Context, span *Span, parent oteltrace.SpanContext) {
	parentCtx := ctx
	if parent.IsValid() {
		parentCtx = oteltrace.ContextWithSpanContext(ctx, parent)
	}

	_, otlpSpan := e.tracer.Start(
		parentCtx,
		span.Name,
		oteltrace.WithTimestamp(span.StartTime),
	)

	attrs := make([]attribute.KeyValue, 0, len(span.Attributes))
	for k, v := range span.Attributes {
		attrs = append(attrs, attribute.String("transit."+k, v))
	}
	otlpSpan.SetAttributes(attrs...)
	otlpSpan.End(oteltrace.WithTimestamp(span.StartTime.Add(span.Duration)))

	current := otlpSpan.SpanContext()
	for _, child := range span.Children {
		e.exportSpan(ctx, child, current)
	}
}

// hexToTraceID converts a 32-character hex string to trace.TraceID
func hexToTraceID(hexStr string) (oteltrace.TraceID, error) {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return oteltrace.TraceID{}, fmt.Errorf("decoding trace id: %w", err)
	}
	if len(b) != 16 {
		return oteltrace.TraceID{}, fmt.Errorf("trace id: expected 16 bytes, got %d", len(b))
	}
	var traceID oteltrace.TraceID
	copy(traceID[:], b)
	return traceID, nil
}

// Shutdown flushes and closes the exporter
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
