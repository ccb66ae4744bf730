package memory

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/YouSangSon/movies-api/internal/application/validation"
	"github.com/YouSangSon/movies-api/internal/domain/entity"
	"github.com/google/uuid"
)

//go:embed seed/movies.json
var defaultSeed []byte

// DefaultSeed는 내장된 기본 영화 목록을 반환합니다
func DefaultSeed() ([]entity.Movie, error) {
	return LoadSeed(bytes.NewReader(defaultSeed))
}

// LoadSeedFile은 파일에서 영화 목록을 읽습니다. path가 비어 있으면 내장 목록을 사용합니다
func LoadSeedFile(path string) ([]entity.Movie, error) {
	if path == "" {
		return DefaultSeed()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return LoadSeed(f)
}

// LoadSeed는 JSON 배열을 읽어 전체 스키마로 검증된 영화 목록을 반환합니다
// 모든 레코드는 고유한 UUID를 가져야 합니다
func LoadSeed(r io.Reader) ([]entity.Movie, error) {
	var records []json.RawMessage
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	movies := make([]entity.Movie, 0, len(records))
	seen := make(map[string]bool, len(records))

	for i, raw := range records {
		var key struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &key); err != nil {
			return nil, fmt.Errorf("seed movie %d: %w", i, err)
		}
		if _, err := uuid.Parse(key.ID); err != nil {
			return nil, fmt.Errorf("seed movie %d: invalid id %q: %w", i, key.ID, err)
		}
		if seen[key.ID] {
			return nil, fmt.Errorf("seed movie %d: %w: %s", i, entity.ErrDuplicateID, key.ID)
		}
		seen[key.ID] = true

		switch res := validation.ValidateFull(raw).(type) {
		case validation.Ok[entity.Movie]:
			movie := res.Value
			movie.ID = key.ID
			movies = append(movies, movie)
		case validation.Invalid[entity.Movie]:
			return nil, fmt.Errorf("seed movie %d (%s): %w", i, key.ID, res.Violations)
		}
	}

	return movies, nil
}
