package validation

import (
	"fmt"
	"strings"
)

// Violation은 필드 단위 검증 실패 정보입니다
type Violation struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Violations는 순서가 있는 검증 실패 목록입니다
type Violations []Violation

// Error는 error 인터페이스를 구현합니다
func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		if violation.Path == "" {
			parts = append(parts, violation.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", violation.Path, violation.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Paths는 위반된 필드 경로 목록을 반환합니다
func (v Violations) Paths() []string {
	paths := make([]string, len(v))
	for i, violation := range v {
		paths[i] = violation.Path
	}
	return paths
}

// Result는 검증 결과입니다. Ok 또는 Invalid 중 하나이며 호출자는 타입 스위치로 분기해야 합니다
type Result[T any] interface {
	sealed(T)
}

// Ok는 검증에 성공한 정규화된 값입니다
type Ok[T any] struct {
	Value T
}

// Invalid는 검증 실패 결과입니다
type Invalid[T any] struct {
	Violations Violations
}

func (Ok[T]) sealed(T)      {}
func (Invalid[T]) sealed(T) {}
