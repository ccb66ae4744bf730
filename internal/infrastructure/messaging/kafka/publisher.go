package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/YouSangSon/movies-api/internal/domain/entity"
	"github.com/YouSangSon/movies-api/internal/domain/event"
	"github.com/YouSangSon/movies-api/internal/pkg/circuitbreaker"
)

// Topics는 이벤트 종류별 토픽 이름입니다
type Topics struct {
	Created string
	Updated string
	Deleted string
}

// movieEventMessage는 토픽에 기록되는 이벤트 형식입니다
type movieEventMessage struct {
	EventID   string     `json:"event_id"`
	EventType string     `json:"event_type"`
	Timestamp time.Time  `json:"timestamp"`
	MovieID   string     `json:"movie_id"`
	Data      *movieData `json:"data,omitempty"`
	Changes   []string   `json:"changes,omitempty"`
}

type movieData struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Year     int            `json:"year"`
	Duration int            `json:"duration"`
	Rate     float64        `json:"rate"`
	Poster   string         `json:"poster"`
	Genre    []entity.Genre `json:"genre"`
}

// MoviePublisher는 영화 변경 이벤트를 Kafka로 발행합니다
// 연속 실패 시 circuit breaker가 발행을 차단합니다
type MoviePublisher struct {
	producer *Producer
	topics   Topics
	breaker  *circuitbreaker.CircuitBreaker
}

var _ event.Publisher = (*MoviePublisher)(nil)

// NewMoviePublisher는 새로운 영화 이벤트 발행자를 생성합니다
func NewMoviePublisher(producer *Producer, topics Topics, breaker *circuitbreaker.CircuitBreaker) *MoviePublisher {
	return &MoviePublisher{
		producer: producer,
		topics:   topics,
		breaker:  breaker,
	}
}

// Publish는 이벤트 종류에 맞는 토픽으로 이벤트를 발행합니다
func (p *MoviePublisher) Publish(ctx context.Context, e event.MovieEvent) error {
	topic, err := p.topicFor(e.Type)
	if err != nil {
		return err
	}

	msg := movieEventMessage{
		EventID:   e.ID,
		EventType: string(e.Type),
		Timestamp: e.Timestamp,
		MovieID:   e.MovieID,
		Changes:   e.Changes,
	}
	if e.Movie != nil {
		msg.Data = &movieData{
			ID:       e.Movie.ID,
			Title:    e.Movie.Title,
			Year:     e.Movie.Year,
			Duration: e.Movie.Duration,
			Rate:     e.Movie.Rate,
			Poster:   e.Movie.Poster,
			Genre:    e.Movie.Genre,
		}
	}

	return p.breaker.Do(ctx, func(ctx context.Context) error {
		return p.producer.PublishEvent(ctx, topic, e.MovieID, msg)
	})
}

// State는 발행 circuit breaker의 현재 상태를 반환합니다
func (p *MoviePublisher) State() circuitbreaker.State {
	return p.breaker.State()
}

// Close는 내부 프로듀서를 종료합니다
func (p *MoviePublisher) Close() error {
	return p.producer.Close()
}

func (p *MoviePublisher) topicFor(t event.Type) (string, error) {
	switch t {
	case event.MovieCreated:
		return p.topics.Created, nil
	case event.MovieUpdated:
		return p.topics.Updated, nil
	case event.MovieDeleted:
		return p.topics.Deleted, nil
	default:
		return "", fmt.Errorf("unknown event type %q", t)
	}
}
