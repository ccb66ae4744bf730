package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "movies-api"
)

// Config는 트레이싱 설정입니다
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	JaegerEndpoint string
	SamplingRate   float64
	Enabled        bool
}

// Init은 OpenTelemetry 트레이서를 초기화합니다
// 비활성화된 경우 아무 작업도 하지 않는 종료 함수를 반환합니다
func Init(cfg *Config) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.JaegerEndpoint)))
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exp),
		tracesdk.WithResource(res),
		tracesdk.WithSampler(sampler(cfg.SamplingRate)),
	)

	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// sampler는 샘플링 비율에 맞는 샘플러를 반환합니다
func sampler(rate float64) tracesdk.Sampler {
	switch {
	case rate >= 1:
		return tracesdk.AlwaysSample()
	case rate <= 0:
		return tracesdk.NeverSample()
	default:
		return tracesdk.ParentBased(tracesdk.TraceIDRatioBased(rate))
	}
}

// StartSpan은 새로운 span을 시작합니다
func StartSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, spanName, opts...)
}

// AddEvent는 span에 이벤트를 추가합니다
func AddEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// SetAttributes는 span에 속성을 추가합니다
func SetAttributes(ctx context.Context, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attrs...)
}

// RecordError는 span에 에러를 기록하고 상태를 Error로 설정합니다
func RecordError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// GetTraceID는 현재 trace ID를 반환합니다
// 유효한 span이 없으면 빈 문자열을 반환합니다
func GetTraceID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

// MovieID는 영화 ID span 속성을 반환합니다
func MovieID(id string) attribute.KeyValue {
	return attribute.String("movie.id", id)
}
