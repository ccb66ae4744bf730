package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/YouSangSon/movies-api/internal/application/usecase"
	"github.com/YouSangSon/movies-api/internal/config"
	"github.com/YouSangSon/movies-api/internal/domain/event"
	"github.com/YouSangSon/movies-api/internal/infrastructure/messaging/kafka"
	"github.com/YouSangSon/movies-api/internal/infrastructure/persistence/memory"
	httpHandler "github.com/YouSangSon/movies-api/internal/interfaces/http/handler"
	"github.com/YouSangSon/movies-api/internal/interfaces/http/router"
	"github.com/YouSangSon/movies-api/internal/pkg/circuitbreaker"
	"github.com/YouSangSon/movies-api/internal/pkg/logger"
	"github.com/YouSangSon/movies-api/internal/pkg/metrics"
	"github.com/YouSangSon/movies-api/internal/pkg/retry"
	"github.com/YouSangSon/movies-api/internal/pkg/tracing"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title Movies API
// @version 1.0
// @description In-memory movie catalogue with CORS allow-list and field-level validation
// @BasePath /

func main() {
	// ============================================
	// 1. Configuration
	// ============================================
	// .env 파일이 없으면 환경변수만 사용합니다
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./configs", "config")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// ============================================
	// 2. Logger Initialization
	// ============================================
	if err := logger.Init(logger.Config{
		Level:       cfg.Observability.Logging.Level,
		Environment: cfg.App.Environment,
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	logger.Info(ctx, "starting movies api",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
		zap.String("go_version", runtime.Version()),
	)

	// ============================================
	// 3. Metrics Initialization
	// ============================================
	namespace := cfg.Observability.Metrics.Namespace
	if namespace == "" {
		namespace = "movies_api"
	}
	m := metrics.NewWithRuntime(namespace)
	logger.Info(ctx, "metrics initialized", zap.String("namespace", namespace))

	// ============================================
	// 4. Tracing Initialization
	// ============================================
	if cfg.Observability.Tracing.Enabled {
		tracingShutdown, err := tracing.Init(&tracing.Config{
			ServiceName:    cfg.App.Name,
			ServiceVersion: cfg.App.Version,
			Environment:    cfg.App.Environment,
			JaegerEndpoint: cfg.Observability.Tracing.JaegerEndpoint,
			SamplingRate:   cfg.Observability.Tracing.SamplingRate,
			Enabled:        true,
		})
		if err != nil {
			logger.Fatal(ctx, "failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracingShutdown(shutdownCtx); err != nil {
				logger.Error(ctx, "failed to shutdown tracing", zap.Error(err))
			}
		}()
		logger.Info(ctx, "tracing initialized", zap.String("jaeger_endpoint", cfg.Observability.Tracing.JaegerEndpoint))
	}

	// ============================================
	// 5. Movie Store
	// ============================================
	seed, err := memory.LoadSeedFile(cfg.Movies.SeedFile)
	if err != nil {
		logger.Fatal(ctx, "failed to load seed movies", zap.Error(err), zap.String("seed_file", cfg.Movies.SeedFile))
	}
	movieRepo := memory.NewMovieRepository(seed...)
	m.SetMoviesStored(len(seed))
	logger.Info(ctx, "movie store seeded", logger.Count(len(seed)))

	// ============================================
	// 6. Kafka Event Publisher (Optional)
	// ============================================
	var publisher event.Publisher
	var breakerState httpHandler.BreakerState
	if cfg.Kafka.Enabled {
		producerCfg := &kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			ClientID:     cfg.Kafka.ClientID,
			MaxRetries:   cfg.Kafka.Producer.MaxRetries,
			RetryBackoff: cfg.Kafka.Producer.RetryBackoff,
			Timeout:      cfg.Kafka.Producer.Timeout,
		}

		// 브로커가 API보다 늦게 뜨는 경우를 위해 연결을 재시도합니다
		connectRetry := retry.DefaultConfig()
		connectRetry.MaxAttempts = cfg.Kafka.Producer.ConnectAttempts
		connectRetry.OnRetry = func(attempt int, wait time.Duration, err error) {
			logger.Warn(ctx, "kafka producer connection failed, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("wait", wait),
				zap.Error(err),
			)
		}
		producer, err := retry.DoWithValue(ctx, connectRetry, func(ctx context.Context) (*kafka.Producer, error) {
			return kafka.NewProducer(producerCfg)
		})
		if err != nil {
			logger.Fatal(ctx, "failed to create kafka producer", zap.Error(err), zap.Strings("brokers", cfg.Kafka.Brokers))
		}

		threshold := cfg.Kafka.CircuitBreaker.FailureThreshold
		breaker := circuitbreaker.New("kafka-movie-events", circuitbreaker.Config{
			MaxRequests: cfg.Kafka.CircuitBreaker.MaxRequests,
			Interval:    cfg.Kafka.CircuitBreaker.Interval,
			Timeout:     cfg.Kafka.CircuitBreaker.Timeout,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			OnStateChange: func(name string, from circuitbreaker.State, to circuitbreaker.State) {
				logger.Warn(context.Background(), "circuit breaker state changed",
					logger.Component(name),
					zap.String("from", from.String()),
					logger.CircuitState(to.String()),
				)
			},
		})

		moviePublisher := kafka.NewMoviePublisher(producer, kafka.Topics{
			Created: cfg.Kafka.Topics.Created,
			Updated: cfg.Kafka.Topics.Updated,
			Deleted: cfg.Kafka.Topics.Deleted,
		}, breaker)
		defer func() {
			if err := moviePublisher.Close(); err != nil {
				logger.Error(ctx, "failed to close kafka producer", zap.Error(err))
			}
		}()

		publisher = moviePublisher
		breakerState = moviePublisher
		logger.Info(ctx, "kafka event publisher initialized", zap.Strings("brokers", cfg.Kafka.Brokers))
	}

	// ============================================
	// 7. Use Cases & Handlers
	// ============================================
	movieUC := usecase.NewMovieUseCase(movieRepo, publisher, m)
	movieHandler := httpHandler.NewMovieHandler(movieUC)
	healthHandler := httpHandler.NewHealthHandler(movieUC, breakerState, cfg.App.Version)

	// ============================================
	// 8. HTTP Server
	// ============================================
	engine := router.SetupRouter(movieHandler, healthHandler, m, router.Options{
		Environment:    cfg.App.Environment,
		AllowedOrigins: cfg.Server.HTTP.AllowedOrigins,
		MaxRequestSize: cfg.Server.HTTP.MaxRequestSize,
		EnableGzip:     cfg.Server.HTTP.EnableGzip,
		EnableTracing:  cfg.Observability.Tracing.Enabled,
		EnableMetrics:  cfg.Observability.Metrics.Enabled,
	})

	srv := &http.Server{
		Addr:         cfg.Server.HTTP.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.HTTP.ReadTimeout,
		WriteTimeout: cfg.Server.HTTP.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// ============================================
	// 9. Graceful Shutdown
	// ============================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info(ctx, "shutdown signal received", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error(ctx, "HTTP server failed", zap.Error(err))
	}

	healthHandler.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "server forced to shutdown", zap.Error(err))
	}

	logger.Info(ctx, "server exited")
}
