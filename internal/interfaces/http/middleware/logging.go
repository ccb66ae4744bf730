package middleware

import (
	"time"

	"github.com/YouSangSon/movies-api/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger는 HTTP 요청/응답을 로깅합니다
// 5xx는 error, 4xx는 warn, 나머지는 info 레벨입니다
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		ctx := c.Request.Context()
		duration := time.Since(start)
		statusCode := c.Writer.Status()

		fields := []zap.Field{
			logger.HTTPMethod(c.Request.Method),
			logger.HTTPPath(path),
			logger.HTTPStatus(statusCode),
			logger.RemoteAddr(c.ClientIP()),
			logger.DurationMs(duration),
			zap.Int64("request_size", c.Request.ContentLength),
			zap.Int("response_size", c.Writer.Size()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if route := c.FullPath(); route != "" {
			fields = append(fields, zap.String("route", route))
		}

		logLevel := logger.Info
		switch {
		case statusCode >= 500:
			logLevel = logger.Error
			if len(c.Errors) > 0 {
				fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
			}
		case statusCode >= 400:
			logLevel = logger.Warn
		}

		logLevel(ctx, "request completed", fields...)
	}
}
