package dto

import (
	"encoding/json"

	"github.com/YouSangSon/movies-api/internal/application/validation"
	"github.com/YouSangSon/movies-api/internal/domain/entity"
)

// ListMoviesRequest는 영화 목록 조회 요청 DTO입니다
// Genre가 비어 있으면 전체 목록을 반환합니다
type ListMoviesRequest struct {
	Genre string `form:"genre"`
}

// CreateMovieRequest는 영화 생성 요청 DTO입니다
// Payload는 검증 전 원본 JSON 본문입니다
type CreateMovieRequest struct {
	Payload json.RawMessage
}

// UpdateMovieRequest는 영화 부분 수정 요청 DTO입니다
type UpdateMovieRequest struct {
	ID      string
	Payload json.RawMessage
}

// MovieResponse는 영화 응답 DTO입니다
type MovieResponse struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Duration int      `json:"duration"`
	Rate     float64  `json:"rate"`
	Poster   string   `json:"poster"`
	Genre    []string `json:"genre"`
}

// FromMovie는 엔티티를 응답 DTO로 변환합니다
func FromMovie(m entity.Movie) MovieResponse {
	genres := make([]string, len(m.Genre))
	for i, g := range m.Genre {
		genres[i] = string(g)
	}
	return MovieResponse{
		ID:       m.ID,
		Title:    m.Title,
		Year:     m.Year,
		Duration: m.Duration,
		Rate:     m.Rate,
		Poster:   m.Poster,
		Genre:    genres,
	}
}

// FromMovies는 엔티티 목록을 응답 DTO 목록으로 변환합니다. 결과는 nil이 아닙니다
func FromMovies(movies []entity.Movie) []MovieResponse {
	result := make([]MovieResponse, len(movies))
	for i, m := range movies {
		result[i] = FromMovie(m)
	}
	return result
}

// MessageResponse는 단순 메시지 응답입니다
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse는 검증 실패 응답입니다
type ErrorResponse struct {
	Error validation.Violations `json:"error"`
}
