package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/YouSangSon/movies-api/internal/domain/entity"
	"github.com/YouSangSon/movies-api/internal/domain/event"
	"github.com/YouSangSon/movies-api/internal/pkg/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTopics = Topics{Created: "movies.created", Updated: "movies.updated", Deleted: "movies.deleted"}

func newTestPublisher(t *testing.T, trip uint32) (*MoviePublisher, *mocks.SyncProducer) {
	t.Helper()
	config := mocks.NewTestConfig()
	config.Producer.Return.Successes = true
	sp := mocks.NewSyncProducer(t, config)
	breaker := circuitbreaker.New("kafka-test", circuitbreaker.Config{
		Timeout: time.Minute,
		ReadyToTrip: func(c circuitbreaker.Counts) bool {
			return c.ConsecutiveFailures >= trip
		},
	})
	return NewMoviePublisher(NewProducerFrom(sp), testTopics, breaker), sp
}

func TestMoviePublisher_PublishCreated(t *testing.T) {
	publisher, sp := newTestPublisher(t, 3)
	defer func() { assert.NoError(t, publisher.Close()) }()

	movie := entity.Movie{
		ID: "5ad1a235-0d9c-410a-b32b-220d91689a08", Title: "Inception", Year: 2010, Duration: 148,
		Rate: 8.8, Poster: "http://x.com/i.jpg", Genre: []entity.Genre{entity.GenreSciFi},
	}

	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var msg map[string]interface{}
		if err := json.Unmarshal(val, &msg); err != nil {
			return err
		}
		if msg["event_type"] != "movie.created" || msg["movie_id"] != movie.ID {
			return errors.New("unexpected event header fields")
		}
		data, ok := msg["data"].(map[string]interface{})
		if !ok || data["title"] != "Inception" {
			return errors.New("unexpected event data")
		}
		return nil
	})

	err := publisher.Publish(context.Background(), event.NewMovieEvent(event.MovieCreated, movie.ID, &movie, nil))
	require.NoError(t, err)
}

func TestMoviePublisher_PublishDeletedOmitsData(t *testing.T) {
	publisher, sp := newTestPublisher(t, 3)
	defer func() { assert.NoError(t, publisher.Close()) }()

	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var msg map[string]interface{}
		if err := json.Unmarshal(val, &msg); err != nil {
			return err
		}
		if _, ok := msg["data"]; ok {
			return errors.New("deleted event must not carry data")
		}
		return nil
	})

	err := publisher.Publish(context.Background(), event.NewMovieEvent(event.MovieDeleted, "m-1", nil, nil))
	require.NoError(t, err)
}

func TestMoviePublisher_BreakerOpensOnFailures(t *testing.T) {
	publisher, sp := newTestPublisher(t, 2)
	defer func() { assert.NoError(t, publisher.Close()) }()
	ctx := context.Background()

	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	e := event.NewMovieEvent(event.MovieUpdated, "m-1", &entity.Movie{ID: "m-1"}, []string{"rate"})
	assert.ErrorIs(t, publisher.Publish(ctx, e), sarama.ErrOutOfBrokers)
	assert.ErrorIs(t, publisher.Publish(ctx, e), sarama.ErrOutOfBrokers)

	assert.Equal(t, circuitbreaker.StateOpen, publisher.State())
	assert.ErrorIs(t, publisher.Publish(ctx, e), circuitbreaker.ErrCircuitOpen)
}

func TestMoviePublisher_UnknownType(t *testing.T) {
	publisher, _ := newTestPublisher(t, 1)
	defer func() { assert.NoError(t, publisher.Close()) }()

	err := publisher.Publish(context.Background(), event.MovieEvent{Type: "movie.archived"})
	assert.Error(t, err)
}

func TestMoviePublisher_TopicRouting(t *testing.T) {
	publisher, _ := newTestPublisher(t, 1)
	defer func() { assert.NoError(t, publisher.Close()) }()

	for typ, want := range map[event.Type]string{
		event.MovieCreated: testTopics.Created,
		event.MovieUpdated: testTopics.Updated,
		event.MovieDeleted: testTopics.Deleted,
	} {
		got, err := publisher.topicFor(typ)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNewSaramaConfig(t *testing.T) {
	config := NewSaramaConfig(&ProducerConfig{ClientID: "movies-api", MaxRetries: 7, RetryBackoff: time.Second})

	assert.Equal(t, "movies-api", config.ClientID)
	assert.Equal(t, 7, config.Producer.Retry.Max)
	assert.Equal(t, time.Second, config.Producer.Retry.Backoff)
	assert.True(t, config.Producer.Return.Successes)
	assert.True(t, config.Producer.Idempotent)
	assert.NoError(t, config.Validate())
}
