package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/YouSangSon/movies-api/internal/application/dto"
	"github.com/YouSangSon/movies-api/internal/application/validation"
	"github.com/YouSangSon/movies-api/internal/domain/entity"
	"github.com/YouSangSon/movies-api/internal/domain/event"
	"github.com/YouSangSon/movies-api/internal/domain/repository"
	apperrors "github.com/YouSangSon/movies-api/internal/pkg/errors"
	"github.com/YouSangSon/movies-api/internal/pkg/logger"
	"github.com/YouSangSon/movies-api/internal/pkg/metrics"
	"github.com/YouSangSon/movies-api/internal/pkg/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// MovieNotFoundMessage는 영화가 없을 때의 응답 메시지입니다
const MovieNotFoundMessage = "Movie not found"

// MovieUseCase는 영화 관련 유즈케이스입니다
type MovieUseCase struct {
	repo      repository.MovieRepository
	publisher event.Publisher
	metrics   *metrics.Metrics
}

// NewMovieUseCase는 새로운 MovieUseCase를 생성합니다
// publisher가 nil이면 이벤트를 발행하지 않습니다
func NewMovieUseCase(repo repository.MovieRepository, publisher event.Publisher, m *metrics.Metrics) *MovieUseCase {
	return &MovieUseCase{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
	}
}

// ListMovies는 영화 목록을 조회합니다. Genre가 있으면 대소문자 구분 없이 필터링합니다
func (uc *MovieUseCase) ListMovies(ctx context.Context, req *dto.ListMoviesRequest) ([]dto.MovieResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "MovieUseCase.ListMovies")
	defer span.End()

	var movies []entity.Movie
	err := uc.observe(ctx, "list", func() error {
		var err error
		if req.Genre != "" {
			tracing.SetAttributes(ctx, attribute.String("movie.genre", req.Genre))
			movies, err = uc.repo.ListByGenre(ctx, req.Genre)
		} else {
			movies, err = uc.repo.List(ctx)
		}
		return err
	})
	if err != nil {
		tracing.RecordError(ctx, err)
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list movies")
	}

	logger.Debug(ctx, "movies listed", logger.Genre(req.Genre), logger.Count(len(movies)))

	return dto.FromMovies(movies), nil
}

// GetMovie는 ID로 영화를 조회합니다
func (uc *MovieUseCase) GetMovie(ctx context.Context, id string) (*dto.MovieResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "MovieUseCase.GetMovie")
	defer span.End()

	tracing.SetAttributes(ctx, tracing.MovieID(id))

	var movie entity.Movie
	err := uc.observe(ctx, "get", func() error {
		var err error
		movie, err = uc.repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, uc.storeError(ctx, err, "failed to get movie")
	}

	resp := dto.FromMovie(movie)
	return &resp, nil
}

// CreateMovie는 전체 스키마로 검증한 뒤 새 영화를 저장합니다
// 검증에 실패하면 저장소를 건드리지 않습니다
func (uc *MovieUseCase) CreateMovie(ctx context.Context, req *dto.CreateMovieRequest) (*dto.MovieResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "MovieUseCase.CreateMovie")
	defer span.End()

	var movie entity.Movie
	switch res := validation.ValidateFull(req.Payload).(type) {
	case validation.Invalid[entity.Movie]:
		return nil, uc.invalid(ctx, "create", res.Violations)
	case validation.Ok[entity.Movie]:
		movie = res.Value
	}

	movie.ID = uuid.NewString()
	tracing.SetAttributes(ctx, tracing.MovieID(movie.ID))

	var created entity.Movie
	err := uc.observe(ctx, "create", func() error {
		var err error
		created, err = uc.repo.Create(ctx, movie)
		return err
	})
	if err != nil {
		return nil, uc.storeError(ctx, err, "failed to create movie")
	}
	uc.refreshCount(ctx)

	logger.Info(ctx, "movie created", logger.MovieID(created.ID), zap.String("title", created.Title))

	uc.publish(ctx, event.NewMovieEvent(event.MovieCreated, created.ID, &created, nil))

	resp := dto.FromMovie(created)
	return &resp, nil
}

// UpdateMovie는 부분 스키마로 검증한 뒤 기존 영화에 병합합니다
// 검증이 존재 여부 확인보다 먼저 수행됩니다
func (uc *MovieUseCase) UpdateMovie(ctx context.Context, req *dto.UpdateMovieRequest) (*dto.MovieResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "MovieUseCase.UpdateMovie")
	defer span.End()

	tracing.SetAttributes(ctx, tracing.MovieID(req.ID))

	var patch entity.MoviePatch
	switch res := validation.ValidatePartial(req.Payload).(type) {
	case validation.Invalid[entity.MoviePatch]:
		return nil, uc.invalid(ctx, "update", res.Violations)
	case validation.Ok[entity.MoviePatch]:
		patch = res.Value
	}

	var updated entity.Movie
	err := uc.observe(ctx, "update", func() error {
		var err error
		updated, err = uc.repo.Update(ctx, req.ID, func(current entity.Movie) (entity.Movie, error) {
			return current.Apply(patch), nil
		})
		return err
	})
	if err != nil {
		return nil, uc.storeError(ctx, err, "failed to update movie")
	}

	changes := patch.Changes()
	logger.Info(ctx, "movie updated", logger.MovieID(updated.ID), logger.Changes(changes))

	if len(changes) > 0 {
		uc.publish(ctx, event.NewMovieEvent(event.MovieUpdated, updated.ID, &updated, changes))
	}

	resp := dto.FromMovie(updated)
	return &resp, nil
}

// DeleteMovie는 영화를 삭제합니다
func (uc *MovieUseCase) DeleteMovie(ctx context.Context, id string) error {
	ctx, span := tracing.StartSpan(ctx, "MovieUseCase.DeleteMovie")
	defer span.End()

	tracing.SetAttributes(ctx, tracing.MovieID(id))

	err := uc.observe(ctx, "delete", func() error {
		return uc.repo.DeleteByID(ctx, id)
	})
	if err != nil {
		return uc.storeError(ctx, err, "failed to delete movie")
	}
	uc.refreshCount(ctx)

	logger.Info(ctx, "movie deleted", logger.MovieID(id))

	uc.publish(ctx, event.NewMovieEvent(event.MovieDeleted, id, nil, nil))
	return nil
}

// CountMovies는 저장된 영화 수를 반환합니다
func (uc *MovieUseCase) CountMovies(ctx context.Context) (int, error) {
	var n int
	err := uc.observe(ctx, "count", func() error {
		var err error
		n, err = uc.repo.Count(ctx)
		return err
	})
	return n, err
}

// observe는 저장소 작업의 소요 시간과 결과를 기록합니다
func (uc *MovieUseCase) observe(ctx context.Context, operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	duration := time.Since(start)

	status := "success"
	if err != nil {
		status = "error"
		if errors.Is(err, entity.ErrMovieNotFound) {
			status = "not_found"
		}
	}

	uc.metrics.RecordStoreOperation(operation, status, duration)
	logger.LogStoreOperation(ctx, operation, duration.Milliseconds(), err)
	return err
}

// refreshCount는 저장된 영화 수 게이지를 갱신합니다
func (uc *MovieUseCase) refreshCount(ctx context.Context) {
	if n, err := uc.repo.Count(ctx); err == nil {
		uc.metrics.SetMoviesStored(n)
	}
}

// invalid는 검증 실패를 기록하고 InvalidInput 에러로 변환합니다
func (uc *MovieUseCase) invalid(ctx context.Context, operation string, violations validation.Violations) error {
	uc.metrics.RecordValidationFailure(operation)
	tracing.AddEvent(ctx, "validation failed", attribute.StringSlice("paths", violations.Paths()))
	logger.Info(ctx, "movie payload rejected",
		logger.Operation(operation),
		logger.Violations(len(violations)),
		zap.Strings("paths", violations.Paths()),
	)
	return apperrors.InvalidInput(violations)
}

// storeError는 저장소 에러를 애플리케이션 에러로 변환합니다
func (uc *MovieUseCase) storeError(ctx context.Context, err error, message string) error {
	if errors.Is(err, entity.ErrMovieNotFound) {
		return apperrors.NotFound(MovieNotFoundMessage, err)
	}
	tracing.RecordError(ctx, err)
	logger.Error(ctx, message, zap.Error(err))
	return apperrors.Wrap(fmt.Errorf("%s: %w", message, err), apperrors.ErrCodeInternal, message)
}

// publish는 변경 이벤트를 발행합니다. 실패는 기록만 하고 요청은 성공으로 처리합니다
func (uc *MovieUseCase) publish(ctx context.Context, e event.MovieEvent) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, e); err != nil {
		uc.metrics.RecordEventPublished(string(e.Type), "error")
		logger.Warn(ctx, "failed to publish movie event",
			logger.EventType(string(e.Type)),
			logger.MovieID(e.MovieID),
			zap.Error(err),
		)
		return
	}
	uc.metrics.RecordEventPublished(string(e.Type), "success")
}
