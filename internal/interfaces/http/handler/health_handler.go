package handler

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/YouSangSon/movies-api/internal/pkg/circuitbreaker"
	"github.com/gin-gonic/gin"
)

// MovieCounter는 저장소 상태 확인에 쓰이는 영화 수 조회 인터페이스입니다
type MovieCounter interface {
	CountMovies(ctx context.Context) (int, error)
}

// BreakerState는 이벤트 발행기의 circuit breaker 상태 조회 인터페이스입니다
type BreakerState interface {
	State() circuitbreaker.State
}

// HealthHandler는 헬스체크 핸들러입니다
type HealthHandler struct {
	store   MovieCounter
	events  BreakerState
	version string
	ready   atomic.Bool
}

// NewHealthHandler는 새로운 HealthHandler를 생성합니다
// events가 nil이면 kafka 체크를 생략합니다
func NewHealthHandler(store MovieCounter, events BreakerState, version string) *HealthHandler {
	h := &HealthHandler{
		store:   store,
		events:  events,
		version: version,
	}
	h.ready.Store(true)
	return h
}

// SetReady는 readiness 상태를 변경합니다. 종료 시작 시 false로 설정합니다
func (h *HealthHandler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// HealthResponse는 헬스체크 응답입니다
type HealthResponse struct {
	Status    string                 `json:"status"` // "healthy", "degraded", "unhealthy"
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Checks    map[string]HealthCheck `json:"checks"`
}

// HealthCheck는 개별 의존성 체크 결과입니다
type HealthCheck struct {
	Status   string  `json:"status"`
	Message  string  `json:"message,omitempty"`
	Duration float64 `json:"duration_ms"`
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
		Checks:    make(map[string]HealthCheck),
	}

	start := time.Now()
	count, err := h.store.CountMovies(ctx)
	elapsed := float64(time.Since(start).Microseconds()) / 1000
	if err != nil {
		response.Checks["store"] = HealthCheck{Status: "unhealthy", Message: err.Error(), Duration: elapsed}
		response.Status = "unhealthy"
	} else {
		response.Checks["store"] = HealthCheck{
			Status:   "healthy",
			Message:  pluralMovies(count),
			Duration: elapsed,
		}
	}

	if h.events != nil {
		state := h.events.State()
		check := HealthCheck{Status: "healthy", Message: "circuit " + state.String()}
		if state != circuitbreaker.StateClosed {
			check.Status = "unhealthy"
			if response.Status == "healthy" {
				response.Status = "degraded"
			}
		}
		response.Checks["kafka"] = check
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready godoc
// @Summary      Readiness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "shutting down",
		})
		return
	}

	if _, err := h.store.CountMovies(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "store unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
	})
}

func pluralMovies(n int) string {
	if n == 1 {
		return "1 movie"
	}
	return fmt.Sprintf("%d movies", n)
}
