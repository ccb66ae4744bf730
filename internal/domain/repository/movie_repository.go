package repository

import (
	"context"

	"github.com/YouSangSon/movies-api/internal/domain/entity"
)

// MovieRepository는 영화 저장소 인터페이스입니다
// 구현체는 반환하는 값과 저장하는 값 모두 사본을 사용해야 합니다
type MovieRepository interface {
	// List는 저장 순서대로 모든 영화를 반환합니다
	List(ctx context.Context) ([]entity.Movie, error)

	// ListByGenre는 장르가 일치하는 영화를 반환합니다 (대소문자 무시)
	ListByGenre(ctx context.Context, genre string) ([]entity.Movie, error)

	// FindByID는 ID로 영화를 조회합니다
	FindByID(ctx context.Context, id string) (entity.Movie, error)

	// Create는 영화를 컬렉션 끝에 추가합니다
	Create(ctx context.Context, movie entity.Movie) (entity.Movie, error)

	// ReplaceAt은 id 위치의 영화를 교체합니다
	ReplaceAt(ctx context.Context, id string, movie entity.Movie) (entity.Movie, error)

	// Update는 조회-변경-교체를 하나의 잠금 안에서 수행합니다
	Update(ctx context.Context, id string, fn func(entity.Movie) (entity.Movie, error)) (entity.Movie, error)

	// DeleteByID는 영화를 삭제합니다
	DeleteByID(ctx context.Context, id string) error

	// Count는 저장된 영화 수를 반환합니다
	Count(ctx context.Context) (int, error)
}
