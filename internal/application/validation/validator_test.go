package validation_test

import (
	"testing"

	"github.com/YouSangSon/movies-api/internal/application/validation"
	"github.com/YouSangSon/movies-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPayload = `{"title":"Foo","year":2020,"duration":90,"poster":"http://x.com/p.jpg","genre":["Drama"]}`

func mustInvalid[T any](t *testing.T, r validation.Result[T]) validation.Violations {
	t.Helper()
	invalid, ok := r.(validation.Invalid[T])
	require.True(t, ok, "expected Invalid result, got %#v", r)
	require.NotEmpty(t, invalid.Violations)
	return invalid.Violations
}

func mustOk[T any](t *testing.T, r validation.Result[T]) T {
	t.Helper()
	ok, isOk := r.(validation.Ok[T])
	require.True(t, isOk, "expected Ok result, got %#v", r)
	return ok.Value
}

func TestValidateFull_DefaultsRate(t *testing.T) {
	movie := mustOk(t, validation.ValidateFull([]byte(validPayload)))

	assert.Equal(t, entity.Movie{
		Title:    "Foo",
		Year:     2020,
		Duration: 90,
		Rate:     5,
		Poster:   "http://x.com/p.jpg",
		Genre:    []entity.Genre{entity.GenreDrama},
	}, movie)
}

func TestValidateFull_KeepsExplicitRate(t *testing.T) {
	movie := mustOk(t, validation.ValidateFull([]byte(
		`{"title":"Foo","year":1900,"duration":1,"rate":0,"poster":"https://x.com/p.jpg","genre":[]}`,
	)))

	assert.Equal(t, 0.0, movie.Rate)
	assert.Equal(t, 1900, movie.Year)
	assert.Empty(t, movie.Genre)
}

func TestValidateFull_IgnoresUnknownFieldsAndID(t *testing.T) {
	movie := mustOk(t, validation.ValidateFull([]byte(
		`{"id":"client-id","director":"Someone","title":"Foo","year":2020,"duration":90,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
	)))

	assert.Empty(t, movie.ID)
}

func TestValidateFull_MissingTitle(t *testing.T) {
	violations := mustInvalid(t, validation.ValidateFull([]byte(
		`{"year":2020,"duration":90,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
	)))

	require.Len(t, violations, 1)
	assert.Equal(t, "title", violations[0].Path)
	assert.Equal(t, validation.CodeRequired, violations[0].Code)
}

func TestValidateFull_EmptyObjectReportsEveryRequiredField(t *testing.T) {
	violations := mustInvalid(t, validation.ValidateFull([]byte(`{}`)))

	assert.Equal(t, []string{"title", "year", "duration", "poster", "genre"}, violations.Paths())
}

func TestValidateFull_FieldRules(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantPath string
		wantCode string
	}{
		{
			name:     "title wrong type",
			payload:  `{"title":42,"year":2020,"duration":90,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
			wantPath: "title",
			wantCode: validation.CodeInvalidType,
		},
		{
			name:     "title empty",
			payload:  `{"title":"","year":2020,"duration":90,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
			wantPath: "title",
			wantCode: validation.CodeTooSmall,
		},
		{
			name:     "title null",
			payload:  `{"title":null,"year":2020,"duration":90,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
			wantPath: "title",
			wantCode: validation.CodeInvalidType,
		},
		{
			name:     "year too old",
			payload:  `{"title":"Foo","year":1899,"duration":90,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
			wantPath: "year",
			wantCode: validation.CodeTooSmall,
		},
		{
			name:     "year too new",
			payload:  `{"title":"Foo","year":2025,"duration":90,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
			wantPath: "year",
			wantCode: validation.CodeTooBig,
		},
		{
			name:     "year not integer",
			payload:  `{"title":"Foo","year":2020.5,"duration":90,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
			wantPath: "year",
			wantCode: validation.CodeInvalidType,
		},
		{
			name:     "year as string",
			payload:  `{"title":"Foo","year":"2020","duration":90,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
			wantPath: "year",
			wantCode: validation.CodeInvalidType,
		},
		{
			name:     "year beyond float range",
			payload:  `{"title":"Foo","year":1e400,"duration":90,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
			wantPath: "year",
			wantCode: validation.CodeTooBig,
		},
		{
			name:     "duration below float range",
			payload:  `{"title":"Foo","year":2020,"duration":-1e400,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
			wantPath: "duration",
			wantCode: validation.CodeTooSmall,
		},
		{
			name:     "rate beyond float range",
			payload:  `{"title":"Foo","year":2020,"duration":90,"rate":1e400,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
			wantPath: "rate",
			wantCode: validation.CodeTooBig,
		},
		{
			name:     "duration zero",
			payload:  `{"title":"Foo","year":2020,"duration":0,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
			wantPath: "duration",
			wantCode: validation.CodeTooSmall,
		},
		{
			name:     "rate above range",
			payload:  `{"title":"Foo","year":2020,"duration":90,"rate":10.5,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
			wantPath: "rate",
			wantCode: validation.CodeTooBig,
		},
		{
			name:     "rate below range",
			payload:  `{"title":"Foo","year":2020,"duration":90,"rate":-1,"poster":"http://x.com/p.jpg","genre":["Drama"]}`,
			wantPath: "rate",
			wantCode: validation.CodeTooSmall,
		},
		{
			name:     "poster not a url",
			payload:  `{"title":"Foo","year":2020,"duration":90,"poster":"not a url","genre":["Drama"]}`,
			wantPath: "poster",
			wantCode: validation.CodeInvalidURL,
		},
		{
			name:     "genre not an array",
			payload:  `{"title":"Foo","year":2020,"duration":90,"poster":"http://x.com/p.jpg","genre":"Drama"}`,
			wantPath: "genre",
			wantCode: validation.CodeInvalidType,
		},
		{
			name:     "genre outside enum",
			payload:  `{"title":"Foo","year":2020,"duration":90,"poster":"http://x.com/p.jpg","genre":["Drama","Horror"]}`,
			wantPath: "genre.1",
			wantCode: validation.CodeInvalidEnum,
		},
		{
			name:     "genre enum is case sensitive",
			payload:  `{"title":"Foo","year":2020,"duration":90,"poster":"http://x.com/p.jpg","genre":["drama"]}`,
			wantPath: "genre.0",
			wantCode: validation.CodeInvalidEnum,
		},
		{
			name:     "genre element wrong type",
			payload:  `{"title":"Foo","year":2020,"duration":90,"poster":"http://x.com/p.jpg","genre":[1]}`,
			wantPath: "genre.0",
			wantCode: validation.CodeInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := mustInvalid(t, validation.ValidateFull([]byte(tt.payload)))

			require.Len(t, violations, 1, "violations: %v", violations)
			assert.Equal(t, tt.wantPath, violations[0].Path)
			assert.Equal(t, tt.wantCode, violations[0].Code)
			assert.NotEmpty(t, violations[0].Message)
		})
	}
}

func TestValidateFull_ViolationsFollowSchemaOrder(t *testing.T) {
	violations := mustInvalid(t, validation.ValidateFull([]byte(
		`{"genre":["Nope"],"poster":"bad","rate":"high","duration":-5,"year":"x","title":1}`,
	)))

	assert.Equal(t, []string{"title", "year", "duration", "rate", "poster", "genre.0"}, violations.Paths())
}

func TestValidateFull_BodyMustBeObject(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantCode string
	}{
		{name: "empty", payload: ``, wantCode: validation.CodeInvalidBody},
		{name: "malformed", payload: `{"title":`, wantCode: validation.CodeInvalidBody},
		{name: "array", payload: `[]`, wantCode: validation.CodeInvalidType},
		{name: "string", payload: `"movie"`, wantCode: validation.CodeInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := mustInvalid(t, validation.ValidateFull([]byte(tt.payload)))

			require.Len(t, violations, 1)
			assert.Empty(t, violations[0].Path)
			assert.Equal(t, tt.wantCode, violations[0].Code)
		})
	}
}

func TestValidatePartial_EmptyObject(t *testing.T) {
	patch := mustOk(t, validation.ValidatePartial([]byte(`{}`)))

	assert.True(t, patch.IsEmpty())
	assert.Nil(t, patch.Rate)
}

func TestValidatePartial_OnlyPresentFields(t *testing.T) {
	patch := mustOk(t, validation.ValidatePartial([]byte(`{"year":2001,"genre":["Sci-Fi","Adventure"]}`)))

	require.NotNil(t, patch.Year)
	assert.Equal(t, 2001, *patch.Year)
	assert.Equal(t, []entity.Genre{entity.GenreSciFi, entity.GenreAdventure}, patch.Genre)
	assert.Nil(t, patch.Title)
	assert.Nil(t, patch.Duration)
	assert.Nil(t, patch.Rate)
	assert.Nil(t, patch.Poster)
}

func TestValidatePartial_AppliesFieldRules(t *testing.T) {
	violations := mustInvalid(t, validation.ValidatePartial([]byte(`{"year":1800,"poster":"nope"}`)))

	assert.Equal(t, []string{"year", "poster"}, violations.Paths())
}

func TestValidatePartial_NullIsNotAbsent(t *testing.T) {
	violations := mustInvalid(t, validation.ValidatePartial([]byte(`{"rate":null}`)))

	require.Len(t, violations, 1)
	assert.Equal(t, "rate", violations[0].Path)
	assert.Equal(t, validation.CodeInvalidType, violations[0].Code)
}

func TestValidatePartial_IgnoresID(t *testing.T) {
	patch := mustOk(t, validation.ValidatePartial([]byte(`{"id":"other"}`)))

	assert.True(t, patch.IsEmpty())
}

func TestViolations_Error(t *testing.T) {
	v := validation.Violations{
		{Path: "title", Code: validation.CodeRequired, Message: "Movie title is required"},
		{Code: validation.CodeInvalidBody, Message: "Malformed JSON body"},
	}

	assert.Equal(t, "validation failed: title: Movie title is required; Malformed JSON body", v.Error())
}

func TestValidateFull_HugeIntegerMessage(t *testing.T) {
	violations := mustInvalid(t, validation.ValidateFull([]byte(`{"title":"Foo","year":1e400,"duration":90,"poster":"http://x.com/p.jpg","genre":["Drama"]}`)))

	require.Len(t, violations, 1)
	assert.Equal(t, "Number must be a safe integer", violations[0].Message)
}
