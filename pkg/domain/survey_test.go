package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSurvey(t *testing.T) {
	data := []byte(`{
		"title": "Intro",
		"intro": "= Welcome\n**Thanks** for joining.",
		"questions": [
			{"id": "name", "text": "Your //name//?"},
			{"id": "role", "type": "choice", "text": "Role", "options": ["dev", "ops"]}
		]
	}`)

	s, err := ParseSurvey(data)
	require.NoError(t, err)
	assert.Equal(t, "Intro", s.Title)
	require.Len(t, s.Questions, 2)
	assert.Equal(t, QuestionTypeText, s.Questions[0].Kind())
	assert.Equal(t, QuestionTypeChoice, s.Questions[1].Kind())
	assert.Equal(t, []string{"dev", "ops"}, s.Questions[1].Options)
}

func TestParseSurvey_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Not JSON", `{"title":`},
		{"Unknown Field", `{"title": "x", "pages": []}`},
		{"Missing Title", `{"questions": []}`},
		{"Missing ID", `{"title": "x", "questions": [{"text": "q"}]}`},
		{"Duplicate ID", `{"title": "x", "questions": [{"id": "a", "text": "q"}, {"id": "a", "text": "r"}]}`},
		{"Choice Without Options", `{"title": "x", "questions": [{"id": "a", "type": "choice", "text": "q"}]}`},
		{"Text With Options", `{"title": "x", "questions": [{"id": "a", "text": "q", "options": ["y"]}]}`},
		{"Unknown Type", `{"title": "x", "questions": [{"id": "a", "type": "scale", "text": "q"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSurvey([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidSurvey)
		})
	}
}

func TestCleanSourceName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"intro.json", "intro.json", false},
		{"/intro.json", "intro.json", false},
		{"nested/intro.json", "nested/intro.json", false},
		{"", "", true},
		{"/", "", true},
		{".", "", true},
		{"../secret.json", "", true},
		{"a/../b.json", "", true},
		{"a//b.json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CleanSourceName(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSourceName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
