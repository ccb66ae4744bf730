package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(&Config{Enabled: false})

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSampler(t *testing.T) {
	assert.Equal(t, tracesdk.AlwaysSample().Description(), sampler(1).Description())
	assert.Equal(t, tracesdk.NeverSample().Description(), sampler(0).Description())
	assert.Contains(t, sampler(0.5).Description(), "TraceIDRatioBased")
}

func TestStartSpan_RecordsAttributesAndErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tracesdk.NewTracerProvider(tracesdk.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	ctx, span := StartSpan(context.Background(), "MovieUseCase.GetMovie")
	SetAttributes(ctx, MovieID("m-1"))
	RecordError(ctx, errors.New("movie not found"))
	assert.NotEmpty(t, GetTraceID(ctx))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "MovieUseCase.GetMovie", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), MovieID("m-1"))
}

func TestGetTraceID_WithoutSpan(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
}
