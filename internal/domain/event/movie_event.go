package event

import (
	"context"
	"time"

	"github.com/YouSangSon/movies-api/internal/domain/entity"
	"github.com/google/uuid"
)

// Type은 영화 변경 이벤트 종류입니다
type Type string

const (
	MovieCreated Type = "movie.created"
	MovieUpdated Type = "movie.updated"
	MovieDeleted Type = "movie.deleted"
)

// MovieEvent는 영화 컬렉션의 변경 사항입니다
// 삭제 이벤트에는 Movie가 비어 있습니다
type MovieEvent struct {
	ID        string
	Type      Type
	Timestamp time.Time
	MovieID   string
	Movie     *entity.Movie
	Changes   []string
}

// NewMovieEvent는 새 이벤트 ID와 현재 시각으로 이벤트를 생성합니다
func NewMovieEvent(t Type, movieID string, movie *entity.Movie, changes []string) MovieEvent {
	return MovieEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now().UTC(),
		MovieID:   movieID,
		Movie:     movie,
		Changes:   changes,
	}
}

// Publisher는 영화 변경 이벤트를 외부로 발행합니다
type Publisher interface {
	Publish(ctx context.Context, e MovieEvent) error
}
