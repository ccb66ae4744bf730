package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	m := New("", prometheus.NewRegistry())

	m.RecordHTTPRequest("GET", "/movies", "200", 10*time.Millisecond, 0, 512)
	m.RecordHTTPRequest("GET", "/movies", "200", 20*time.Millisecond, 0, 512)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/movies", "200")))
}

func TestDomainMetrics(t *testing.T) {
	m := New("movies_api", prometheus.NewRegistry())

	m.RecordStoreOperation("create", "success", time.Microsecond)
	m.SetMoviesStored(11)
	m.RecordEventPublished("movie.created", "success")
	m.RecordValidationFailure("create")
	m.RecordValidationFailure("create")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOperationsTotal.WithLabelValues("create", "success")))
	assert.Equal(t, 11.0, testutil.ToFloat64(m.MoviesStored))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublishedTotal.WithLabelValues("movie.created", "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValidationFailuresTotal.WithLabelValues("create")))
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	m := New("movies_api", prometheus.NewRegistry())
	m.SetMoviesStored(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "movies_api_movies_stored 3")
}

func TestNewWithRuntime(t *testing.T) {
	m := NewWithRuntime("")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
