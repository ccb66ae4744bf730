package middleware

import (
	"net/http"

	"github.com/YouSangSon/movies-api/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// AllowedMethods는 preflight 응답에 광고하는 메서드 목록입니다
const AllowedMethods = "GET, POST, DELETE, PATCH"

// CORS는 Origin allow-list 기반 CORS 미들웨어입니다
//
// 허용된 Origin이면 Access-Control-Allow-Origin에 그대로 반영합니다.
// Origin이 없거나 허용되지 않은 경우 헤더 없이 요청을 계속 처리하며
// 차단은 브라우저가 합니다. OPTIONS 요청은 본문 없이 200으로 응답하고,
// 허용된 Origin이거나 Origin이 없으면 허용 메서드를 알립니다.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		_, ok := allowed[origin]

		header := c.Writer.Header()
		if origin != "" {
			header.Add("Vary", "Origin")
			if ok {
				header.Set("Access-Control-Allow-Origin", origin)
			} else {
				logger.Debug(c.Request.Context(), "origin not allowed", logger.Origin(origin))
			}
		}

		if c.Request.Method == http.MethodOptions {
			if ok || origin == "" {
				header.Set("Access-Control-Allow-Methods", AllowedMethods)
				if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
					header.Set("Access-Control-Allow-Headers", requested)
				}
			}
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
