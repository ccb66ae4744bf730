package middleware

import (
	"net/http"
	"strconv"

	"github.com/YouSangSon/movies-api/internal/pkg/logger"
	"github.com/YouSangSon/movies-api/internal/pkg/tracing"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracing은 요청마다 OpenTelemetry span을 생성합니다
func Tracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx, span := tracing.StartSpan(c.Request.Context(), c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.String("http.target", c.Request.URL.RequestURI()),
			attribute.String("http.user_agent", c.Request.UserAgent()),
			attribute.String("http.client_ip", c.ClientIP()),
		)

		if requestID := GetRequestID(c); requestID != "" {
			span.SetAttributes(attribute.String("request.id", requestID))
		}

		if traceID := tracing.GetTraceID(ctx); traceID != "" {
			ctx = logger.WithFields(ctx, logger.TraceID(traceID))
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		statusCode := c.Writer.Status()
		span.SetAttributes(
			attribute.Int("http.status_code", statusCode),
			attribute.Int("http.response_size", c.Writer.Size()),
		)

		switch {
		case statusCode >= http.StatusInternalServerError:
			if len(c.Errors) > 0 {
				span.RecordError(c.Errors.Last())
			}
			span.SetStatus(codes.Error, "HTTP "+strconv.Itoa(statusCode))
		case len(c.Errors) > 0:
			span.AddEvent("request error", trace.WithAttributes(attribute.String("error", c.Errors.String())))
		}
	}
}
