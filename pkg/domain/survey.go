package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
)

// QuestionType constants define how a question collects its answer.
const (
	// QuestionTypeText asks for free text.
	QuestionTypeText = "text"
	// QuestionTypeChoice asks the respondent to pick one of Options.
	QuestionTypeChoice = "choice"
)

// Survey is a document loaded from a survey source.
type Survey struct {
	Title string `json:"title" yaml:"title"`

	// Intro is shown above the questions, in the markdown dialect.
	Intro string `json:"intro,omitempty" yaml:"intro,omitempty"`

	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a single prompt in a Survey.
type Question struct {
	ID      string   `json:"id" yaml:"id"`
	Type    string   `json:"type,omitempty" yaml:"type,omitempty"` // "text" (default) or "choice"
	Text    string   `json:"text" yaml:"text"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Kind returns the effective question type, defaulting to text.
func (q Question) Kind() string {
	if q.Type == "" {
		return QuestionTypeText
	}
	return q.Type
}

// ParseSurvey decodes and validates a survey document.
// Unknown fields are rejected so typos in a source surface early.
func ParseSurvey(data []byte) (*Survey, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var s Survey
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSurvey, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the structural rules of a survey.
func (s *Survey) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidSurvey)
	}

	seen := make(map[string]bool, len(s.Questions))
	for i, q := range s.Questions {
		if q.ID == "" {
			return fmt.Errorf("%w: question %d has no id", ErrInvalidSurvey, i)
		}
		if seen[q.ID] {
			return fmt.Errorf("%w: duplicate question id %q", ErrInvalidSurvey, q.ID)
		}
		seen[q.ID] = true

		switch q.Kind() {
		case QuestionTypeText:
			if len(q.Options) > 0 {
				return fmt.Errorf("%w: text question %q cannot have options", ErrInvalidSurvey, q.ID)
			}
		case QuestionTypeChoice:
			if len(q.Options) == 0 {
				return fmt.Errorf("%w: choice question %q needs options", ErrInvalidSurvey, q.ID)
			}
		default:
			return fmt.Errorf("%w: question %q has unknown type %q", ErrInvalidSurvey, q.ID, q.Type)
		}
	}
	return nil
}

// CleanSourceName normalizes a source name to a slash-separated path relative
// to the source root. Leading slashes are dropped; names that would escape the
// root are rejected with ErrInvalidSourceName.
func CleanSourceName(name string) (string, error) {
	clean := strings.TrimLeft(name, "/")
	if clean == "" || clean == "." || !fs.ValidPath(clean) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSourceName, name)
	}
	return clean, nil
}
