package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeParseFailure, "bad token at offset %d", 42)

	if err.Code != ErrCodeParseFailure {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeParseFailure)
	}
	if err.Message != "bad token at offset 42" {
		t.Errorf("Message = %q", err.Message)
	}
	if !strings.Contains(err.Error(), "PARSE_FAILURE") {
		t.Errorf("Error() = %q, should contain code", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("unexpected end of input")
	err := Wrap(ErrCodeParseFailure, cause, "decode document")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "unexpected end of input") {
		t.Errorf("Error() = %q, should contain cause", err.Error())
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeDepthExceeded, "too deep"), ErrCodeDepthExceeded, true},
		{"different code", New(ErrCodeDepthExceeded, "too deep"), ErrCodeParseFailure, false},
		{"wrapped in fmt", fmt.Errorf("context: %w", New(ErrCodeNotFound, "gone")), ErrCodeNotFound, true},
		{"plain error", stderrors.New("plain"), ErrCodeInternal, false},
		{"nil error", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %q) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidTerm, "blank")); got != ErrCodeInvalidTerm {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeInvalidTerm)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeParseFailure, "invalid JSON at offset 7")
	if got := UserMessage(err); got != "invalid JSON at offset 7" {
		t.Errorf("UserMessage = %q", got)
	}
	if strings.Contains(UserMessage(err), "PARSE_FAILURE") {
		t.Error("UserMessage should not include the code prefix")
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
