package entity

import "errors"

var (
	// ErrMovieNotFound는 영화를 찾을 수 없을 때 발생합니다
	ErrMovieNotFound = errors.New("movie not found")

	// ErrInvalidID는 ID가 비어 있을 때 발생합니다
	ErrInvalidID = errors.New("invalid movie id")

	// ErrDuplicateID는 이미 존재하는 ID로 저장하려 할 때 발생합니다
	ErrDuplicateID = errors.New("duplicate movie id")
)
