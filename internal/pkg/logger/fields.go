package logger

import (
	"time"

	"go.uber.org/zap"
)

// RequestID는 요청 ID 필드를 반환합니다
func RequestID(id string) zap.Field {
	return zap.String("request_id", id)
}

// TraceID는 trace ID 필드를 반환합니다
func TraceID(id string) zap.Field {
	return zap.String("trace_id", id)
}

// MovieID는 영화 ID 필드를 반환합니다
func MovieID(id string) zap.Field {
	return zap.String("movie_id", id)
}

// Genre는 장르 필터 필드를 반환합니다
func Genre(genre string) zap.Field {
	return zap.String("genre", genre)
}

// Changes는 변경된 필드 목록을 반환합니다
func Changes(fields []string) zap.Field {
	return zap.Strings("changes", fields)
}

// Violations는 검증 실패 개수 필드를 반환합니다
func Violations(n int) zap.Field {
	return zap.Int("violations", n)
}

// Operation은 작업명 필드를 반환합니다
func Operation(op string) zap.Field {
	return zap.String("operation", op)
}

// Duration은 작업 시간 필드를 반환합니다
func Duration(d time.Duration) zap.Field {
	return zap.Duration("duration", d)
}

// DurationMs는 작업 시간을 밀리초로 반환합니다
func DurationMs(d time.Duration) zap.Field {
	return zap.Float64("duration_ms", float64(d.Microseconds())/1000)
}

// HTTPMethod는 HTTP 메서드 필드를 반환합니다
func HTTPMethod(method string) zap.Field {
	return zap.String("http_method", method)
}

// HTTPPath는 HTTP 경로 필드를 반환합니다
func HTTPPath(path string) zap.Field {
	return zap.String("http_path", path)
}

// HTTPStatus는 HTTP 상태 코드 필드를 반환합니다
func HTTPStatus(status int) zap.Field {
	return zap.Int("http_status", status)
}

// RemoteAddr는 원격 주소 필드를 반환합니다
func RemoteAddr(addr string) zap.Field {
	return zap.String("remote_addr", addr)
}

// Origin은 CORS Origin 헤더 필드를 반환합니다
func Origin(origin string) zap.Field {
	return zap.String("origin", origin)
}

// ErrorCode는 에러 코드 필드를 반환합니다
func ErrorCode(code string) zap.Field {
	return zap.String("error_code", code)
}

// ErrorStack는 에러 스택 필드를 반환합니다
func ErrorStack(stack string) zap.Field {
	return zap.String("error_stack", stack)
}

// Component는 컴포넌트명 필드를 반환합니다
func Component(name string) zap.Field {
	return zap.String("component", name)
}

// Count는 카운트 필드를 반환합니다
func Count(n int) zap.Field {
	return zap.Int("count", n)
}

// Size는 크기 필드를 반환합니다
func Size(n int64) zap.Field {
	return zap.Int64("size", n)
}

// EventType은 이벤트 타입 필드를 반환합니다
func EventType(t string) zap.Field {
	return zap.String("event_type", t)
}

// Topic은 Kafka 토픽 필드를 반환합니다
func Topic(topic string) zap.Field {
	return zap.String("topic", topic)
}

// Partition은 Kafka 파티션 필드를 반환합니다
func Partition(p int32) zap.Field {
	return zap.Int32("partition", p)
}

// Offset은 Kafka 오프셋 필드를 반환합니다
func Offset(o int64) zap.Field {
	return zap.Int64("offset", o)
}

// CircuitState는 circuit breaker 상태 필드를 반환합니다
func CircuitState(state string) zap.Field {
	return zap.String("circuit_state", state)
}
