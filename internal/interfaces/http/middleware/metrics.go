package middleware

import (
	"strconv"
	"time"

	"github.com/YouSangSon/movies-api/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// unmatchedRoute는 라우트가 없는 요청의 endpoint 라벨입니다
const unmatchedRoute = "unmatched"

// Metrics는 Prometheus HTTP 메트릭을 수집합니다
// endpoint 라벨은 /movies/:id 같은 라우트 템플릿입니다
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = unmatchedRoute
		}

		requestSize := 0
		if c.Request.ContentLength > 0 {
			requestSize = int(c.Request.ContentLength)
		}
		responseSize := c.Writer.Size()
		if responseSize < 0 {
			responseSize = 0
		}

		m.RecordHTTPRequest(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
			requestSize,
			responseSize,
		)
	}
}
