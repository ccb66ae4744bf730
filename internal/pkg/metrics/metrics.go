package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics는 애플리케이션 메트릭을 관리합니다
type Metrics struct {
	// HTTP 메트릭
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// 저장소 메트릭
	StoreOperationsTotal   *prometheus.CounterVec
	StoreOperationDuration *prometheus.HistogramVec
	MoviesStored           prometheus.Gauge

	// 도메인 메트릭
	EventsPublishedTotal    *prometheus.CounterVec
	ValidationFailuresTotal *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New는 주어진 레지스트리에 메트릭을 등록합니다
// namespace가 비어 있으면 접두어 없이 등록됩니다
func New(namespace string, reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		HTTPRequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_size_bytes",
				Help:      "HTTP request size in bytes",
				Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
			},
			[]string{"method", "endpoint"},
		),
		HTTPResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_size_bytes",
				Help:      "HTTP response size in bytes",
				Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
			},
			[]string{"method", "endpoint"},
		),
		StoreOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_operations_total",
				Help:      "Total number of movie store operations",
			},
			[]string{"operation", "status"},
		),
		StoreOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "store_operation_duration_seconds",
				Help:      "Movie store operation duration in seconds",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
			[]string{"operation"},
		),
		MoviesStored: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "movies_stored",
				Help:      "Number of movies currently held in the store",
			},
		),
		EventsPublishedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_published_total",
				Help:      "Total number of movie change events published",
			},
			[]string{"type", "status"},
		),
		ValidationFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_failures_total",
				Help:      "Total number of rejected movie payloads",
			},
			[]string{"operation"},
		),
		gatherer: reg,
	}
}

// NewWithRuntime은 Go 런타임과 프로세스 수집기를 포함한 레지스트리로 메트릭을 생성합니다
func NewWithRuntime(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return New(namespace, reg)
}

// Handler는 /metrics 엔드포인트용 핸들러를 반환합니다
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// RecordHTTPRequest는 HTTP 요청 메트릭을 기록합니다
func (m *Metrics) RecordHTTPRequest(method, endpoint, status string, duration time.Duration, requestSize, responseSize int) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	m.HTTPRequestSize.WithLabelValues(method, endpoint).Observe(float64(requestSize))
	m.HTTPResponseSize.WithLabelValues(method, endpoint).Observe(float64(responseSize))
}

// RecordStoreOperation은 저장소 작업 메트릭을 기록합니다
func (m *Metrics) RecordStoreOperation(operation, status string, duration time.Duration) {
	m.StoreOperationsTotal.WithLabelValues(operation, status).Inc()
	m.StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetMoviesStored는 저장된 영화 수를 갱신합니다
func (m *Metrics) SetMoviesStored(n int) {
	m.MoviesStored.Set(float64(n))
}

// RecordEventPublished는 이벤트 발행 결과를 기록합니다
func (m *Metrics) RecordEventPublished(eventType, status string) {
	m.EventsPublishedTotal.WithLabelValues(eventType, status).Inc()
}

// RecordValidationFailure는 검증 실패를 기록합니다
func (m *Metrics) RecordValidationFailure(operation string) {
	m.ValidationFailuresTotal.WithLabelValues(operation).Inc()
}
