package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodySize는 요청 본문 크기를 제한합니다. limit이 0 이하이면 제한하지 않습니다
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
