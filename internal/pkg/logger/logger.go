package logger

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey string

const (
	loggerKey contextKey = "logger"
)

var (
	globalLogger *zap.Logger
	globalMu     sync.RWMutex
)

// Config는 로거 설정입니다
type Config struct {
	Environment string
	Level       string
	ServiceName string
	Version     string
}

// New는 설정으로 zap 로거를 생성합니다
// production 환경은 JSON, 그 외에는 컬러 콘솔 출력을 사용합니다
func New(cfg Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Environment == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.MessageKey = "message"
		config.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		config.EncoderConfig.EncodeDuration = zapcore.SecondsDurationEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		config.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := config.Build(
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, err
	}

	// 서비스 정보를 기본 필드로 추가
	if cfg.ServiceName != "" {
		logger = logger.With(zap.String("service", cfg.ServiceName))
	}
	if cfg.Version != "" {
		logger = logger.With(zap.String("version", cfg.Version))
	}
	if cfg.Environment != "" {
		logger = logger.With(zap.String("environment", cfg.Environment))
	}

	// 컨테이너 환경 정보 (있는 경우)
	if podName := os.Getenv("POD_NAME"); podName != "" {
		logger = logger.With(zap.String("pod_name", podName))
	}

	return logger, nil
}

// Init은 글로벌 로거를 초기화합니다
func Init(cfg Config) error {
	logger, err := New(cfg)
	if err != nil {
		return err
	}
	SetLogger(logger)
	return nil
}

// SetLogger는 글로벌 로거를 교체합니다
func SetLogger(logger *zap.Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GetLogger는 컨텍스트에서 로거를 가져오거나 글로벌 로거를 반환합니다
func GetLogger(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
			return logger
		}
	}

	globalMu.RLock()
	logger := globalLogger
	globalMu.RUnlock()
	if logger != nil {
		return logger
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger, _ = zap.NewProduction()
	}
	return globalLogger
}

// WithLogger는 컨텍스트에 로거를 추가합니다
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithFields는 컨텍스트의 로거에 필드를 추가합니다
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	logger := GetLogger(ctx).With(fields...)
	return WithLogger(ctx, logger)
}

// Info는 info 레벨 로그를 출력합니다
func Info(ctx context.Context, msg string, fields ...zap.Field) {
	GetLogger(ctx).Info(msg, fields...)
}

// Error는 error 레벨 로그를 출력합니다
func Error(ctx context.Context, msg string, fields ...zap.Field) {
	GetLogger(ctx).Error(msg, fields...)
}

// Warn은 warn 레벨 로그를 출력합니다
func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	GetLogger(ctx).Warn(msg, fields...)
}

// Debug는 debug 레벨 로그를 출력합니다
func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	GetLogger(ctx).Debug(msg, fields...)
}

// Fatal은 fatal 레벨 로그를 출력하고 프로그램을 종료합니다
// 서비스 시작 실패처럼 복구할 수 없는 경우에만 사용합니다
func Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	GetLogger(ctx).Fatal(msg, fields...)
}

// Sync는 로거를 flush합니다
func Sync() {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}

// LogStoreOperation은 저장소 작업을 로깅합니다
// 실패는 warn, 성공은 debug 레벨입니다
func LogStoreOperation(ctx context.Context, operation string, duration int64, err error, fields ...zap.Field) {
	allFields := append(fields,
		zap.String("operation", operation),
		zap.Int64("duration_ms", duration),
	)

	if err != nil {
		allFields = append(allFields, zap.Error(err))
		GetLogger(ctx).Warn("store operation failed", allFields...)
	} else {
		GetLogger(ctx).Debug("store operation completed", allFields...)
	}
}
