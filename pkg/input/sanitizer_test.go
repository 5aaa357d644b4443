package input

import (
	"strings"
	"testing"
)

func TestSanitize_SizeLimit(t *testing.T) {
	limit := 16

	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sanitize(strings.Repeat("a", tt.inputSize), limit)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Sanitize() expected error for size %d, got nil", tt.inputSize)
				}
			} else if err != nil {
				t.Errorf("Sanitize() unexpected error: %v", err)
			}
		})
	}
}

func TestSanitize_DefaultLimit(t *testing.T) {
	if _, err := Sanitize(strings.Repeat("a", DefaultMaxSize), 0); err != nil {
		t.Errorf("Unexpected error at default limit: %v", err)
	}
	if _, err := Sanitize(strings.Repeat("a", DefaultMaxSize+1), 0); err == nil {
		t.Error("Expected error over default limit")
	}
}

func TestSanitize_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal Text", "**Hello** World", "**Hello** World"},
		{"Dialect Newlines", "= Title\nBody\n\nMore", "= Title\nBody\n\nMore"},
		{"ANSI Code", "\x1b[31mRed\x1b[0m", "[31mRed[0m"},
		{"Null Byte", "Null\x00Byte", "NullByte"},
		{"Bell", "Ding\x07", "Ding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(tt.input, 0)
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSanitize_InvalidUTF8(t *testing.T) {
	if _, err := Sanitize("bad\xff", 0); err != ErrInvalidUTF8 {
		t.Errorf("Expected ErrInvalidUTF8, got %v", err)
	}
}
