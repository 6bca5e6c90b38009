package otel

import (
	"context"
	"errors"
	"testing"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"

	"github.com/stretchr/testify/require"
)

func TestSetupShutsDownOnFailure(t *testing.T) {
	enabled, original := EnableTelemetry, setups

	t.Cleanup(func() {
		EnableTelemetry, setups = enabled, original
	})

	var closed []string

	ok := func(name string) func(context.Context, *sdkresource.Resource) (shutdownFunc, error) {
		return func(context.Context, *sdkresource.Resource) (shutdownFunc, error) {
			return func(context.Context) error {
				closed = append(closed, name)
				return nil
			}, nil
		}
	}

	failure := errors.New("exporter unavailable")

	EnableTelemetry = true
	setups = []func(context.Context, *sdkresource.Resource) (shutdownFunc, error){
		ok("tracer"),
		ok("meter"),
		func(context.Context, *sdkresource.Resource) (shutdownFunc, error) {
			return nil, failure
		},
	}

	shutdown, err := Setup(context.Background(), "text2speech", "test")

	require.ErrorIs(t, err, failure)
	require.Equal(t, []string{"tracer", "meter"}, closed)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetupDisabled(t *testing.T) {
	enabled := EnableTelemetry

	t.Cleanup(func() {
		EnableTelemetry = enabled
	})

	EnableTelemetry = false

	shutdown, err := Setup(context.Background(), "text2speech", "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
