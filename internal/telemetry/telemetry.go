// Package telemetry wires OpenTelemetry tracing for the dashboard.
package telemetry

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ServiceName is the tracer name used across osiris.
const ServiceName = "osiris"

// Shutdown flushes and stops a tracer provider.
type Shutdown func(context.Context) error

// Setup installs a global tracer provider. When enabled, spans are written as
// JSON to w; otherwise a no-op provider is installed.
func Setup(enabled bool, w io.Writer) (Shutdown, error) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	if !enabled {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	}

	exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("creating stdout exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// Tracer returns the osiris tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(ServiceName)
}
