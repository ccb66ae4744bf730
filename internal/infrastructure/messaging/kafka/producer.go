package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/YouSangSon/movies-api/internal/pkg/logger"
	"go.uber.org/zap"
)

// Producer는 Kafka 동기 프로듀서입니다
type Producer struct {
	producer sarama.SyncProducer
}

// ProducerConfig는 프로듀서 설정입니다
type ProducerConfig struct {
	Brokers      []string
	ClientID     string
	MaxRetries   int
	RetryBackoff time.Duration
	Timeout      time.Duration
}

// NewSaramaConfig는 프로듀서 설정을 sarama 설정으로 변환합니다
func NewSaramaConfig(cfg *ProducerConfig) *sarama.Config {
	config := sarama.NewConfig()
	config.ClientID = cfg.ClientID
	config.Version = sarama.V3_6_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true

	if cfg.MaxRetries > 0 {
		config.Producer.Retry.Max = cfg.MaxRetries
	}
	if cfg.RetryBackoff > 0 {
		config.Producer.Retry.Backoff = cfg.RetryBackoff
	}
	if cfg.Timeout > 0 {
		config.Producer.Timeout = cfg.Timeout
	}

	return config
}

// NewProducer는 브로커에 연결된 새로운 Kafka 프로듀서를 생성합니다
func NewProducer(cfg *ProducerConfig) (*Producer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, NewSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	logger.Info(context.Background(), "kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("client_id", cfg.ClientID),
	)

	return NewProducerFrom(producer), nil
}

// NewProducerFrom은 이미 생성된 sarama 프로듀서를 감쌉니다
func NewProducerFrom(producer sarama.SyncProducer) *Producer {
	return &Producer{producer: producer}
}

// PublishEvent는 이벤트를 JSON으로 직렬화하여 발행합니다
func (p *Producer) PublishEvent(ctx context.Context, topic, key string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	now := time.Now()
	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: now,
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_time"), Value: []byte(now.Format(time.RFC3339))},
			{Key: []byte("content_type"), Value: []byte("application/json")},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send event to %s: %w", topic, err)
	}

	logger.Debug(ctx, "event published",
		logger.Topic(topic),
		zap.String("key", key),
		logger.Partition(partition),
		logger.Offset(offset),
	)

	return nil
}

// Close는 프로듀서를 종료합니다
func (p *Producer) Close() error {
	return p.producer.Close()
}
