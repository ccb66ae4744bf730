package handler

import (
	"errors"
	"net/http"

	"github.com/YouSangSon/movies-api/internal/application/dto"
	"github.com/YouSangSon/movies-api/internal/application/usecase"
	"github.com/YouSangSon/movies-api/internal/application/validation"
	apperrors "github.com/YouSangSon/movies-api/internal/pkg/errors"
	"github.com/YouSangSon/movies-api/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// MovieDeletedMessage는 삭제 성공 응답 메시지입니다
	MovieDeletedMessage = "Movie deleted"

	internalErrorMessage = "internal server error"
)

// MovieHandler는 영화 관련 HTTP 핸들러입니다
type MovieHandler struct {
	movieUC *usecase.MovieUseCase
}

// NewMovieHandler는 새로운 MovieHandler를 생성합니다
func NewMovieHandler(movieUC *usecase.MovieUseCase) *MovieHandler {
	return &MovieHandler{
		movieUC: movieUC,
	}
}

// List godoc
// @Summary      List movies
// @Description  List every movie, optionally filtered by genre (case-insensitive)
// @Tags         movies
// @Produce      json
// @Param        genre  query     string  false  "Genre filter"
// @Success      200    {array}   dto.MovieResponse
// @Router       /movies [get]
func (h *MovieHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ListMoviesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeError(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "invalid query"))
		return
	}

	movies, err := h.movieUC.ListMovies(ctx, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, movies)
}

// GetByID godoc
// @Summary      Get movie by ID
// @Tags         movies
// @Produce      json
// @Param        id   path      string  true  "Movie ID"
// @Success      200  {object}  dto.MovieResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /movies/{id} [get]
func (h *MovieHandler) GetByID(c *gin.Context) {
	movie, err := h.movieUC.GetMovie(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, movie)
}

// Create godoc
// @Summary      Create a movie
// @Description  Validate the payload against the full movie schema and store it with a new id
// @Tags         movies
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.MovieResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /movies [post]
func (h *MovieHandler) Create(c *gin.Context) {
	payload, ok := h.readBody(c)
	if !ok {
		return
	}

	movie, err := h.movieUC.CreateMovie(c.Request.Context(), &dto.CreateMovieRequest{Payload: payload})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, movie)
}

// Update godoc
// @Summary      Partially update a movie
// @Description  Validate the present fields and merge them into the stored movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Movie ID"
// @Success      200  {object}  dto.MovieResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /movies/{id} [patch]
func (h *MovieHandler) Update(c *gin.Context) {
	payload, ok := h.readBody(c)
	if !ok {
		return
	}

	movie, err := h.movieUC.UpdateMovie(c.Request.Context(), &dto.UpdateMovieRequest{
		ID:      c.Param("id"),
		Payload: payload,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, movie)
}

// Delete godoc
// @Summary      Delete a movie
// @Tags         movies
// @Produce      json
// @Param        id   path      string  true  "Movie ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /movies/{id} [delete]
func (h *MovieHandler) Delete(c *gin.Context) {
	if err := h.movieUC.DeleteMovie(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: MovieDeletedMessage})
}

// readBody는 요청 본문을 읽습니다. 크기 제한을 넘으면 413으로 응답합니다
func (h *MovieHandler) readBody(c *gin.Context) ([]byte, bool) {
	payload, err := c.GetRawData()
	if err == nil {
		return payload, true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		h.writeError(c, apperrors.Wrap(err, apperrors.ErrCodePayloadTooLarge, "request body too large"))
		return nil, false
	}
	h.writeError(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "failed to read request body"))
	return nil, false
}

// writeError는 에러를 HTTP 응답으로 변환합니다
func (h *MovieHandler) writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	_ = c.Error(err)

	var violations validation.Violations
	if apperrors.Is(err, apperrors.ErrCodeInvalidInput) && errors.As(err, &violations) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: violations})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError {
		c.JSON(appErr.HTTPStatus, dto.MessageResponse{Message: appErr.Message})
		return
	}

	logger.Error(ctx, "request failed", logger.ErrorCode(string(apperrors.GetCode(err))), zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: internalErrorMessage})
}
