package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracing_SpanPerRequest(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tracesdk.NewTracerProvider(tracesdk.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	r := newEngine(RequestID(), Tracing(), Recovery())

	serve(r, httptest.NewRequest(http.MethodGet, "/movies/abc", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "GET /movies/:id", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("http.status_code", http.StatusOK))
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)

	assert.Equal(t, "GET /panic", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
