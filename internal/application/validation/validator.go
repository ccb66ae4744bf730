package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/YouSangSon/movies-api/internal/domain/entity"
	"github.com/go-playground/validator/v10"
)

// JSON 숫자를 손실 없이 정수로 표현할 수 있는 최대값
const maxSafeInteger = 1<<53 - 1

// ValidateFull은 생성용 전체 스키마로 payload를 검증합니다
// rate가 없으면 기본값 5를 사용합니다
func ValidateFull(payload []byte) Result[entity.Movie] {
	var s movieSchema
	violations := check(payload, &s, schemaFields(&s.Title, &s.Year, &s.Duration, &s.Rate, &s.Poster, &s.Genre))
	if len(violations) > 0 {
		return Invalid[entity.Movie]{Violations: violations}
	}

	movie := entity.Movie{
		Title:    *s.Title,
		Year:     *s.Year,
		Duration: *s.Duration,
		Rate:     entity.DefaultRate,
		Poster:   *s.Poster,
		Genre:    toGenres(s.Genre),
	}
	if s.Rate != nil {
		movie.Rate = *s.Rate
	}

	return Ok[entity.Movie]{Value: movie}
}

// ValidatePartial은 모든 필드를 선택으로 보고 존재하는 필드만 검증합니다
func ValidatePartial(payload []byte) Result[entity.MoviePatch] {
	var s partialMovieSchema
	violations := check(payload, &s, schemaFields(&s.Title, &s.Year, &s.Duration, &s.Rate, &s.Poster, &s.Genre))
	if len(violations) > 0 {
		return Invalid[entity.MoviePatch]{Violations: violations}
	}

	return Ok[entity.MoviePatch]{Value: entity.MoviePatch{
		Title:    s.Title,
		Year:     s.Year,
		Duration: s.Duration,
		Rate:     s.Rate,
		Poster:   s.Poster,
		Genre:    toGenres(s.Genre),
	}}
}

// fieldDecoder는 JSON 필드 하나를 스키마 필드로 디코딩합니다
type fieldDecoder struct {
	name     string
	expected string
	decode   func(raw json.RawMessage) Violations
}

func schemaFields(title **string, year, duration **int, rate **float64, poster **string, genre *[]string) []fieldDecoder {
	return []fieldDecoder{
		stringField("title", title),
		intField("year", year),
		intField("duration", duration),
		numberField("rate", rate),
		stringField("poster", poster),
		stringsField("genre", genre),
	}
}

// check는 타입 디코딩 후 태그 규칙을 검사하고 스키마 순서로 정렬된 위반 목록을 반환합니다
func check(payload []byte, schema any, fields []fieldDecoder) Violations {
	object, bodyViolation := decodeObject(payload)
	if bodyViolation != nil {
		return Violations{*bodyViolation}
	}

	var violations Violations
	failed := make(map[string]bool)

	for _, f := range fields {
		raw, present := object[f.name]
		if !present {
			continue
		}
		if kindOf(raw) == "null" {
			violations = append(violations, typeViolation(f.name, f.expected, raw))
			failed[f.name] = true
			continue
		}
		if vs := f.decode(raw); len(vs) > 0 {
			violations = append(violations, vs...)
			failed[f.name] = true
		}
	}

	if err := validate.Struct(schema); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return append(violations, Violation{Code: CodeInvalidValue, Message: err.Error()})
		}
		for _, fe := range fieldErrs {
			path := toPath(fe.Field())
			if failed[topLevel(path)] {
				continue
			}
			violations = append(violations, translate(path, fe))
		}
	}

	sort.SliceStable(violations, func(i, j int) bool {
		return fieldOrder[topLevel(violations[i].Path)] < fieldOrder[topLevel(violations[j].Path)]
	})

	return violations
}

func decodeObject(payload []byte) (map[string]json.RawMessage, *Violation) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, &Violation{Code: CodeInvalidBody, Message: "Request body must be a JSON object"}
	}
	if !json.Valid(trimmed) {
		return nil, &Violation{Code: CodeInvalidBody, Message: "Malformed JSON body"}
	}
	if trimmed[0] != '{' {
		return nil, &Violation{
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("Expected object, received %s", kindOf(trimmed)),
		}
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &object); err != nil {
		return nil, &Violation{Code: CodeInvalidBody, Message: "Malformed JSON body"}
	}
	return object, nil
}

func stringField(name string, dst **string) fieldDecoder {
	return fieldDecoder{name: name, expected: "string", decode: func(raw json.RawMessage) Violations {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Violations{typeViolation(name, "string", raw)}
		}
		*dst = &s
		return nil
	}}
}

func intField(name string, dst **int) fieldDecoder {
	return fieldDecoder{name: name, expected: "integer", decode: func(raw json.RawMessage) Violations {
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			if kindOf(raw) == "number" {
				return Violations{outOfRange(name, raw, "Number must be a safe integer")}
			}
			return Violations{typeViolation(name, "integer", raw)}
		}
		if f != math.Trunc(f) {
			return Violations{{Path: name, Code: CodeInvalidType, Message: "Expected integer, received float"}}
		}
		if math.Abs(f) > maxSafeInteger {
			return Violations{{Path: name, Code: CodeTooBig, Message: "Number must be a safe integer"}}
		}
		n := int(f)
		*dst = &n
		return nil
	}}
}

func numberField(name string, dst **float64) fieldDecoder {
	return fieldDecoder{name: name, expected: "number", decode: func(raw json.RawMessage) Violations {
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			if kindOf(raw) == "number" {
				return Violations{outOfRange(name, raw, "Number is out of range")}
			}
			return Violations{typeViolation(name, "number", raw)}
		}
		*dst = &f
		return nil
	}}
}

func stringsField(name string, dst *[]string) fieldDecoder {
	return fieldDecoder{name: name, expected: "array", decode: func(raw json.RawMessage) Violations {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return Violations{typeViolation(name, "array", raw)}
		}

		var violations Violations
		values := make([]string, len(items))
		for i, item := range items {
			if err := json.Unmarshal(item, &values[i]); err != nil || kindOf(item) != "string" {
				violations = append(violations, typeViolation(name+"."+strconv.Itoa(i), "string", item))
			}
		}
		if len(violations) > 0 {
			return violations
		}

		*dst = values
		return nil
	}}
}

// outOfRange는 float64로 표현할 수 없는 JSON 숫자에 대한 위반을 만듭니다
func outOfRange(path string, raw json.RawMessage, message string) Violation {
	code := CodeTooBig
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("-")) {
		code = CodeTooSmall
	}
	return Violation{Path: path, Code: code, Message: message}
}

func typeViolation(path, expected string, raw json.RawMessage) Violation {
	received := kindOf(raw)
	message := fmt.Sprintf("Expected %s, received %s", expected, received)
	if m, ok := typeMessages[path]; ok {
		message = m
	}
	return Violation{Path: path, Code: CodeInvalidType, Message: message}
}

// typeMessages는 필드별 타입 오류 메시지입니다
var typeMessages = map[string]string{
	"title":  "Movie title must be a string",
	"poster": "Movie poster must be a URL string",
	"genre":  "Movie genre must be an array of genres",
}

// kindOf는 JSON 값의 종류를 반환합니다
func kindOf(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "nothing"
	}
	switch raw[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func translate(path string, fe validator.FieldError) Violation {
	field := topLevel(path)

	switch fe.Tag() {
	case "required":
		return Violation{Path: path, Code: CodeRequired, Message: fmt.Sprintf("Movie %s is required", field)}
	case "min":
		return Violation{Path: path, Code: CodeTooSmall, Message: fmt.Sprintf("Movie %s must contain at least %s character(s)", field, fe.Param())}
	case "gte":
		return Violation{Path: path, Code: CodeTooSmall, Message: fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())}
	case "gt":
		return Violation{Path: path, Code: CodeTooSmall, Message: fmt.Sprintf("Number must be greater than %s", fe.Param())}
	case "lte":
		return Violation{Path: path, Code: CodeTooBig, Message: fmt.Sprintf("Number must be less than or equal to %s", fe.Param())}
	case "url":
		return Violation{Path: path, Code: CodeInvalidURL, Message: "Movie poster must be a valid URL"}
	case "genre":
		return Violation{
			Path:    path,
			Code:    CodeInvalidEnum,
			Message: fmt.Sprintf("Invalid enum value. Expected %s, received '%v'", genreList(), fe.Value()),
		}
	default:
		return Violation{Path: path, Code: CodeInvalidValue, Message: fe.Error()}
	}
}

// toPath는 "genre[1]" 형태를 "genre.1"로 바꿉니다
func toPath(field string) string {
	return strings.NewReplacer("[", ".", "]", "").Replace(field)
}

func topLevel(path string) string {
	return strings.SplitN(path, ".", 2)[0]
}

func toGenres(values []string) []entity.Genre {
	if values == nil {
		return nil
	}
	genres := make([]entity.Genre, len(values))
	for i, v := range values {
		genres[i] = entity.Genre(v)
	}
	return genres
}
