package memory

import (
	"context"
	"sync"

	"github.com/YouSangSon/movies-api/internal/domain/entity"
	"github.com/YouSangSon/movies-api/internal/domain/repository"
)

// MovieRepository는 인메모리 영화 저장소입니다
// 삽입 순서를 유지하며 모든 조회는 선형 탐색입니다
type MovieRepository struct {
	movies []entity.Movie
	mu     sync.RWMutex
}

var _ repository.MovieRepository = (*MovieRepository)(nil)

// NewMovieRepository는 seed 데이터로 초기화된 저장소를 생성합니다
func NewMovieRepository(seed ...entity.Movie) *MovieRepository {
	movies := make([]entity.Movie, 0, len(seed))
	for _, m := range seed {
		movies = append(movies, m.Clone())
	}
	return &MovieRepository{movies: movies}
}

// List는 모든 영화를 반환합니다
func (r *MovieRepository) List(ctx context.Context) ([]entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Movie, len(r.movies))
	for i, m := range r.movies {
		result[i] = m.Clone()
	}
	return result, nil
}

// ListByGenre는 장르가 일치하는 영화를 반환합니다
func (r *MovieRepository) ListByGenre(ctx context.Context, genre string) ([]entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Movie, 0)
	for _, m := range r.movies {
		if m.HasGenre(genre) {
			result = append(result, m.Clone())
		}
	}
	return result, nil
}

// FindByID는 ID로 영화를 조회합니다
func (r *MovieRepository) FindByID(ctx context.Context, id string) (entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return entity.Movie{}, entity.ErrMovieNotFound
	}
	return r.movies[i].Clone(), nil
}

// Create는 영화를 추가합니다
func (r *MovieRepository) Create(ctx context.Context, movie entity.Movie) (entity.Movie, error) {
	if movie.ID == "" {
		return entity.Movie{}, entity.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(movie.ID) >= 0 {
		return entity.Movie{}, entity.ErrDuplicateID
	}

	r.movies = append(r.movies, movie.Clone())
	return movie.Clone(), nil
}

// ReplaceAt은 id 위치의 영화를 교체합니다. 저장된 ID는 유지됩니다
func (r *MovieRepository) ReplaceAt(ctx context.Context, id string, movie entity.Movie) (entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return entity.Movie{}, entity.ErrMovieNotFound
	}

	movie = movie.Clone()
	movie.ID = id
	r.movies[i] = movie
	return movie.Clone(), nil
}

// Update는 조회, 변경, 교체를 하나의 쓰기 잠금 안에서 수행합니다
func (r *MovieRepository) Update(ctx context.Context, id string, fn func(entity.Movie) (entity.Movie, error)) (entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return entity.Movie{}, entity.ErrMovieNotFound
	}

	updated, err := fn(r.movies[i].Clone())
	if err != nil {
		return entity.Movie{}, err
	}

	updated = updated.Clone()
	updated.ID = id
	r.movies[i] = updated
	return updated.Clone(), nil
}

// DeleteByID는 영화를 삭제합니다. 나머지 영화의 순서는 유지됩니다
func (r *MovieRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return entity.ErrMovieNotFound
	}

	r.movies = append(r.movies[:i], r.movies[i+1:]...)
	return nil
}

// Count는 저장된 영화 수를 반환합니다
func (r *MovieRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.movies), nil
}

// indexOf는 호출자가 잠금을 잡은 상태에서만 사용합니다
func (r *MovieRepository) indexOf(id string) int {
	for i, m := range r.movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}
