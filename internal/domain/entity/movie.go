package entity

import "strings"

// Genre는 영화 장르입니다
type Genre string

const (
	GenreAction    Genre = "Action"
	GenreDrama     Genre = "Drama"
	GenreCrime     Genre = "Crime"
	GenreAdventure Genre = "Adventure"
	GenreSciFi     Genre = "Sci-Fi"
	GenreRomance   Genre = "Romance"
	GenreAnimation Genre = "Animation"
	GenreBiography Genre = "Biography"
	GenreFantasy   Genre = "Fantasy"
)

// Genres는 허용된 장르 목록입니다 (정의 순서 유지)
var Genres = []Genre{
	GenreAction,
	GenreDrama,
	GenreCrime,
	GenreAdventure,
	GenreSciFi,
	GenreRomance,
	GenreAnimation,
	GenreBiography,
	GenreFantasy,
}

const (
	// MinYear와 MaxYear는 개봉 연도의 허용 범위입니다
	MinYear = 1900
	MaxYear = 2024

	// MinRate와 MaxRate는 평점의 허용 범위입니다
	MinRate = 0
	MaxRate = 10

	// DefaultRate는 평점이 없을 때 사용하는 기본값입니다
	DefaultRate = 5.0
)

// Movie는 영화 도메인 엔티티입니다
type Movie struct {
	ID       string
	Title    string
	Year     int
	Duration int
	Rate     float64
	Poster   string
	Genre    []Genre
}

// MoviePatch는 부분 업데이트 입력입니다. nil 필드는 변경하지 않습니다
type MoviePatch struct {
	Title    *string
	Year     *int
	Duration *int
	Rate     *float64
	Poster   *string
	Genre    []Genre
}

// Clone은 장르 슬라이스까지 복사한 사본을 반환합니다
func (m Movie) Clone() Movie {
	if m.Genre != nil {
		genres := make([]Genre, len(m.Genre))
		copy(genres, m.Genre)
		m.Genre = genres
	}
	return m
}

// HasGenre는 장르를 대소문자 구분 없이 포함하는지 확인합니다
func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genre {
		if strings.EqualFold(string(g), genre) {
			return true
		}
	}
	return false
}

// Apply는 patch를 병합한 새 Movie를 반환합니다. ID는 바뀌지 않습니다
func (m Movie) Apply(p MoviePatch) Movie {
	merged := m.Clone()
	if p.Title != nil {
		merged.Title = *p.Title
	}
	if p.Year != nil {
		merged.Year = *p.Year
	}
	if p.Duration != nil {
		merged.Duration = *p.Duration
	}
	if p.Rate != nil {
		merged.Rate = *p.Rate
	}
	if p.Poster != nil {
		merged.Poster = *p.Poster
	}
	if p.Genre != nil {
		merged.Genre = make([]Genre, len(p.Genre))
		copy(merged.Genre, p.Genre)
	}
	return merged
}

// Changes는 patch에 포함된 필드 이름을 반환합니다
func (p MoviePatch) Changes() []string {
	var fields []string
	if p.Title != nil {
		fields = append(fields, "title")
	}
	if p.Year != nil {
		fields = append(fields, "year")
	}
	if p.Duration != nil {
		fields = append(fields, "duration")
	}
	if p.Rate != nil {
		fields = append(fields, "rate")
	}
	if p.Poster != nil {
		fields = append(fields, "poster")
	}
	if p.Genre != nil {
		fields = append(fields, "genre")
	}
	return fields
}

// IsEmpty는 변경할 필드가 없는지 확인합니다
func (p MoviePatch) IsEmpty() bool {
	return len(p.Changes()) == 0
}
