package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/YouSangSon/movies-api/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery는 패닉을 복구하고 500 에러를 반환합니다
// 패닉이 난 요청만 실패하고 서버는 계속 요청을 처리합니다
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Error(ctx, "panic recovered",
					logger.HTTPMethod(c.Request.Method),
					logger.HTTPPath(c.Request.URL.Path),
					logger.RemoteAddr(c.ClientIP()),
					zap.Any("panic", err),
					logger.ErrorStack(string(debug.Stack())),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"message": "internal server error",
				})
			}
		}()

		c.Next()
	}
}
