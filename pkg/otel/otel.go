package otel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

type shutdownFunc func(context.Context) error

// Setup installs the global trace, meter and log providers and returns a
// function that flushes them. It does nothing unless TELEMETRY is set; the
// exporters read the standard OTEL_* variables.
func Setup(ctx context.Context, serviceName, serviceVersion string) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	if !EnableTelemetry {
		return noop, nil
	}

	resource, err := sdkresource.New(ctx,
		sdkresource.WithFromEnv(),
		sdkresource.WithTelemetrySDK(),
		sdkresource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)

	if err != nil {
		return noop, err
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	var shutdowns []shutdownFunc

	shutdownAll := func(ctx context.Context) error {
		var errs []error

		for _, shutdown := range shutdowns {
			errs = append(errs, shutdown(ctx))
		}

		return errors.Join(errs...)
	}

	for _, setup := range setups {
		shutdown, err := setup(ctx, resource)

		if err != nil {
			return noop, errors.Join(err, shutdownAll(ctx))
		}

		shutdowns = append(shutdowns, shutdown)
	}

	return shutdownAll, nil
}

var setups = []func(context.Context, *sdkresource.Resource) (shutdownFunc, error){
	setupTracer,
	setupMeter,
	setupLogger,
}
