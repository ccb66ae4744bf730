package validation

import (
	"reflect"
	"strings"

	"github.com/YouSangSon/movies-api/internal/domain/entity"
	"github.com/go-playground/validator/v10"
)

// 위반 코드
const (
	CodeRequired     = "required"
	CodeInvalidType  = "invalid_type"
	CodeTooSmall     = "too_small"
	CodeTooBig       = "too_big"
	CodeInvalidURL   = "invalid_string"
	CodeInvalidEnum  = "invalid_enum_value"
	CodeInvalidBody  = "invalid_body"
	CodeInvalidValue = "invalid_value"
)

// movieSchema는 전체 영화 입력 스키마입니다
type movieSchema struct {
	Title    *string  `json:"title" validate:"required,min=1"`
	Year     *int     `json:"year" validate:"required,gte=1900,lte=2024"`
	Duration *int     `json:"duration" validate:"required,gt=0"`
	Rate     *float64 `json:"rate" validate:"omitempty,gte=0,lte=10"`
	Poster   *string  `json:"poster" validate:"required,url"`
	Genre    []string `json:"genre" validate:"required,dive,genre"`
}

// partialMovieSchema는 모든 필드가 선택인 부분 스키마입니다
type partialMovieSchema struct {
	Title    *string  `json:"title" validate:"omitempty,min=1"`
	Year     *int     `json:"year" validate:"omitempty,gte=1900,lte=2024"`
	Duration *int     `json:"duration" validate:"omitempty,gt=0"`
	Rate     *float64 `json:"rate" validate:"omitempty,gte=0,lte=10"`
	Poster   *string  `json:"poster" validate:"omitempty,url"`
	Genre    []string `json:"genre" validate:"omitempty,dive,genre"`
}

// fieldOrder는 위반 목록의 정렬 기준입니다
var fieldOrder = map[string]int{
	"title":    0,
	"year":     1,
	"duration": 2,
	"rate":     3,
	"poster":   4,
	"genre":    5,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 위반 경로에 JSON 필드명을 사용
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return isGenre(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

func isGenre(s string) bool {
	for _, g := range entity.Genres {
		if string(g) == s {
			return true
		}
	}
	return false
}

func genreList() string {
	quoted := make([]string, len(entity.Genres))
	for i, g := range entity.Genres {
		quoted[i] = "'" + string(g) + "'"
	}
	return strings.Join(quoted, " | ")
}
