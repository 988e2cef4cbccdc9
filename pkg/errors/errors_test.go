package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformedLine, "line %d", 3)

	if err.Code != ErrCodeMalformedLine {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedLine)
	}

	if err.Message != "line 3" {
		t.Errorf("Message = %v, want %v", err.Message, "line 3")
	}

	expected := "MALFORMED_LINE: line 3"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("no such file or directory")
	err := Wrap(ErrCodeMissingInput, cause, "open files")

	if err.Code != ErrCodeMissingInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMissingInput)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "MISSING_INPUT: open files: no such file or directory"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeMalformedLine, "test"),
			code:     ErrCodeMalformedLine,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeMalformedLine, "test"),
			code:     ErrCodeMissingInput,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeNetwork, New(ErrCodeNotFound, "inner"), "outer"),
			code:     ErrCodeNetwork,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      errorf(New(ErrCodeInvalidFormat, "bad")),
			code:     ErrCodeInvalidFormat,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeMalformedLine,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeMalformedLine,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidConfig, "test"), ErrCodeInvalidConfig},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeMalformedLine, "line 2: \"x\""), "line 2: \"x\""},
		{"with cause", Wrap(ErrCodeMissingInput, errors.New("denied"), "open files"), "open files: denied"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func errorf(err error) error {
	return &wrapper{err}
}

type wrapper struct{ err error }

func (w *wrapper) Error() string { return "context: " + w.err.Error() }
func (w *wrapper) Unwrap() error { return w.err }
