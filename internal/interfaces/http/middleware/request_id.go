package middleware

import (
	"github.com/YouSangSon/movies-api/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader는 request ID 헤더 이름입니다
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey는 gin context에서 request ID를 저장하는 키입니다
	RequestIDKey = "request_id"

	maxRequestIDLength = 128
)

// RequestID는 요청마다 고유한 ID를 부여하는 미들웨어입니다
// 클라이언트가 보낸 ID가 있으면 그대로 사용하고 요청 로거에 필드로 추가합니다
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		ctx := logger.WithFields(c.Request.Context(), logger.RequestID(requestID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID는 gin context에서 request ID를 반환합니다
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
