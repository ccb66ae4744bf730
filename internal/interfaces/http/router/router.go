package router

import (
	"net/http"

	"github.com/YouSangSon/movies-api/internal/application/dto"
	httpHandler "github.com/YouSangSon/movies-api/internal/interfaces/http/handler"
	"github.com/YouSangSon/movies-api/internal/interfaces/http/middleware"
	"github.com/YouSangSon/movies-api/internal/pkg/metrics"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Options는 라우터 구성 옵션입니다
type Options struct {
	Environment    string
	AllowedOrigins []string
	MaxRequestSize int64
	EnableGzip     bool
	EnableTracing  bool
	EnableMetrics  bool
}

// SetupRouter는 API 서버의 모든 라우트를 설정합니다
func SetupRouter(
	movieHandler *httpHandler.MovieHandler,
	healthHandler *httpHandler.HealthHandler,
	m *metrics.Metrics,
	opts Options,
) *gin.Engine {
	if opts.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Global Middlewares
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	if opts.EnableTracing {
		router.Use(middleware.Tracing())
	}

	if opts.EnableMetrics && m != nil {
		router.Use(middleware.Metrics(m))
	}

	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(opts.AllowedOrigins))

	if opts.EnableGzip {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}

	router.Use(middleware.MaxBodySize(opts.MaxRequestSize))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.MessageResponse{Message: "Method not allowed"})
	})

	// Health & Metrics Endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Movie Endpoints
	movies := router.Group("/movies")
	{
		movies.GET("", movieHandler.List)
		movies.POST("", movieHandler.Create)
		movies.GET("/:id", movieHandler.GetByID)
		movies.PATCH("/:id", movieHandler.Update)
		movies.DELETE("/:id", movieHandler.Delete)
	}

	return router
}
