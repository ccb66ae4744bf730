package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode는 에러 코드 타입입니다
type ErrorCode string

const (
	// 일반 에러
	ErrCodeInternal        ErrorCode = "INTERNAL_ERROR"
	ErrCodeBadRequest      ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodeConflict        ErrorCode = "CONFLICT"
	ErrCodePayloadTooLarge ErrorCode = "PAYLOAD_TOO_LARGE"

	// 도메인 에러
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// 서비스 에러
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	ErrCodeCircuitOpen        ErrorCode = "CIRCUIT_BREAKER_OPEN"
	ErrCodeEventPublish       ErrorCode = "EVENT_PUBLISH_ERROR"
)

// AppError는 애플리케이션 에러입니다
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	HTTPStatus int                    `json:"-"`
	Err        error                  `json:"-"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// Error는 error 인터페이스를 구현합니다
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap은 원본 에러를 반환합니다
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithMetadata는 메타데이터를 추가합니다
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithDetails는 상세 정보를 추가합니다
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// New는 새로운 AppError를 생성합니다
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: getHTTPStatus(code),
	}
}

// Wrap은 기존 에러를 AppError로 래핑합니다
// err가 이미 AppError이면 그대로 반환합니다
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: getHTTPStatus(code),
		Err:        err,
	}
}

// Wrapf는 포맷팅된 메시지로 에러를 래핑합니다
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// NotFound는 리소스 없음 에러를 생성합니다
func NotFound(message string, err error) *AppError {
	return &AppError{
		Code:       ErrCodeNotFound,
		Message:    message,
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

// InvalidInput은 입력 검증 실패 에러를 생성합니다
// err에는 필드별 위반 목록이 담깁니다
func InvalidInput(err error) *AppError {
	return &AppError{
		Code:       ErrCodeInvalidInput,
		Message:    "invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

// Is는 에러가 특정 코드인지 확인합니다
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode는 에러 코드를 반환합니다
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// GetHTTPStatus는 에러의 HTTP 상태 코드를 반환합니다
func GetHTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// getHTTPStatus는 에러 코드에 대응하는 HTTP 상태 코드를 반환합니다
func getHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeBadRequest, ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrCodeServiceUnavailable, ErrCodeCircuitOpen:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrCircuitBreakerOpen은 circuit breaker가 열려 있을 때 반환됩니다
var ErrCircuitBreakerOpen = New(ErrCodeCircuitOpen, "circuit breaker is open - service temporarily unavailable")
