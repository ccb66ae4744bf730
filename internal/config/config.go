package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config는 애플리케이션 전체 설정입니다
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Server        ServerConfig        `mapstructure:"server"`
	Movies        MoviesConfig        `mapstructure:"movies"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// AppConfig는 애플리케이션 기본 설정입니다
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig는 서버 설정입니다
type ServerConfig struct {
	HTTP HTTPServerConfig `mapstructure:"http"`
}

// HTTPServerConfig는 HTTP 서버 설정입니다
type HTTPServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxRequestSize  int64         `mapstructure:"max_request_size"`
	EnableGzip      bool          `mapstructure:"enable_gzip"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// Addr는 listen 주소를 반환합니다
func (c HTTPServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MoviesConfig는 영화 저장소 설정입니다
type MoviesConfig struct {
	// SeedFile이 비어 있으면 내장 seed 데이터를 사용합니다
	SeedFile string `mapstructure:"seed_file"`
}

// KafkaConfig는 Kafka 설정입니다
type KafkaConfig struct {
	Enabled        bool                 `mapstructure:"enabled"`
	Brokers        []string             `mapstructure:"brokers"`
	ClientID       string               `mapstructure:"client_id"`
	Producer       KafkaProducerConfig  `mapstructure:"producer"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
	Topics         KafkaTopics          `mapstructure:"topics"`
}

// KafkaProducerConfig는 Kafka Producer 설정입니다
type KafkaProducerConfig struct {
	Timeout         time.Duration `mapstructure:"timeout"`
	MaxRetries      int           `mapstructure:"max_retries"`
	RetryBackoff    time.Duration `mapstructure:"retry_backoff"`
	ConnectAttempts int           `mapstructure:"connect_attempts"`
}

// CircuitBreakerConfig는 이벤트 발행 circuit breaker 설정입니다
type CircuitBreakerConfig struct {
	MaxRequests      uint32        `mapstructure:"max_requests"`
	Interval         time.Duration `mapstructure:"interval"`
	Timeout          time.Duration `mapstructure:"timeout"`
	FailureThreshold uint32        `mapstructure:"failure_threshold"`
}

// KafkaTopics는 영화 변경 이벤트 토픽 설정입니다
type KafkaTopics struct {
	Created string `mapstructure:"created"`
	Updated string `mapstructure:"updated"`
	Deleted string `mapstructure:"deleted"`
}

// ObservabilityConfig는 관찰성 설정입니다
type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LoggingConfig는 로깅 설정입니다
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// TracingConfig는 분산 추적 설정입니다
type TracingConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	JaegerEndpoint string  `mapstructure:"jaeger_endpoint"`
	SamplingRate   float64 `mapstructure:"sampling_rate"`
}

// MetricsConfig는 메트릭 설정입니다
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// setDefaults는 모든 설정 키의 기본값을 등록합니다
// 환경변수 바인딩도 기본값이 등록된 키에만 적용됩니다
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "movies-api")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.http.host", "")
	v.SetDefault("server.http.port", 1234)
	v.SetDefault("server.http.read_timeout", 10*time.Second)
	v.SetDefault("server.http.write_timeout", 10*time.Second)
	v.SetDefault("server.http.shutdown_timeout", 15*time.Second)
	v.SetDefault("server.http.max_request_size", 1<<20)
	v.SetDefault("server.http.enable_gzip", true)
	v.SetDefault("server.http.allowed_origins", []string{"http://localhost:8080", "http://example.com"})

	v.SetDefault("movies.seed_file", "")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.client_id", "movies-api")
	v.SetDefault("kafka.producer.timeout", 5*time.Second)
	v.SetDefault("kafka.producer.max_retries", 3)
	v.SetDefault("kafka.producer.retry_backoff", 100*time.Millisecond)
	v.SetDefault("kafka.producer.connect_attempts", 5)
	v.SetDefault("kafka.circuit_breaker.max_requests", 3)
	v.SetDefault("kafka.circuit_breaker.interval", 10*time.Second)
	v.SetDefault("kafka.circuit_breaker.timeout", 30*time.Second)
	v.SetDefault("kafka.circuit_breaker.failure_threshold", 5)
	v.SetDefault("kafka.topics.created", "movies.created")
	v.SetDefault("kafka.topics.updated", "movies.updated")
	v.SetDefault("kafka.topics.deleted", "movies.deleted")

	v.SetDefault("observability.logging.level", "info")
	v.SetDefault("observability.tracing.enabled", false)
	v.SetDefault("observability.tracing.jaeger_endpoint", "http://localhost:14268/api/traces")
	v.SetDefault("observability.tracing.sampling_rate", 1.0)
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.namespace", "")
}

// envAliases는 APP_ 접두어 없이도 인식하는 환경변수입니다
var envAliases = map[string][]string{
	"app.environment":               {"APP_APP_ENVIRONMENT", "APP_ENVIRONMENT"},
	"server.http.port":              {"APP_SERVER_HTTP_PORT", "PORT"},
	"server.http.allowed_origins":   {"APP_SERVER_HTTP_ALLOWED_ORIGINS", "CORS_ALLOWED_ORIGINS"},
	"movies.seed_file":              {"APP_MOVIES_SEED_FILE", "MOVIES_SEED_FILE"},
	"kafka.enabled":                 {"APP_KAFKA_ENABLED", "KAFKA_ENABLED"},
	"kafka.brokers":                 {"APP_KAFKA_BROKERS", "KAFKA_BROKERS"},
	"observability.logging.level":   {"APP_OBSERVABILITY_LOGGING_LEVEL", "LOG_LEVEL"},
	"observability.tracing.enabled": {"APP_OBSERVABILITY_TRACING_ENABLED", "TRACING_ENABLED"},
}

// LoadConfig는 설정 파일과 환경변수에서 설정을 로드합니다
// 설정 파일이 없으면 기본값과 환경변수만 사용합니다
func LoadConfig(configPath string, configName string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if configName != "" {
		v.SetConfigName(configName)
	} else {
		v.SetConfigName("config")
	}
	v.SetConfigType("yaml")

	// 환경변수 바인딩 (APP_SERVER_HTTP_PORT 형식)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range envAliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Server.HTTP.AllowedOrigins = trimAll(config.Server.HTTP.AllowedOrigins)
	config.Kafka.Brokers = trimAll(config.Kafka.Brokers)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate는 설정 값을 검증합니다
func (c *Config) Validate() error {
	if c.Server.HTTP.Port <= 0 || c.Server.HTTP.Port > 65535 {
		return fmt.Errorf("invalid server.http.port: %d", c.Server.HTTP.Port)
	}
	for _, origin := range c.Server.HTTP.AllowedOrigins {
		if origin == "" {
			return errors.New("server.http.allowed_origins must not contain empty entries")
		}
	}
	if c.Server.HTTP.MaxRequestSize < 0 {
		return fmt.Errorf("invalid server.http.max_request_size: %d", c.Server.HTTP.MaxRequestSize)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return errors.New("kafka.brokers is required when kafka is enabled")
	}
	if rate := c.Observability.Tracing.SamplingRate; rate < 0 || rate > 1 {
		return fmt.Errorf("invalid observability.tracing.sampling_rate: %v", rate)
	}
	return nil
}

// trimAll은 각 항목의 공백을 제거하고 빈 문자열 한 개짜리 목록은 비웁니다
func trimAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		result = append(result, strings.TrimSpace(value))
	}
	if len(result) == 1 && result[0] == "" {
		return result[:0]
	}
	return result
}
