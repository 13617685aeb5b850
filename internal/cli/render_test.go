package cli

import (
	"context"
	"strings"
	"testing"

	apperrors "github.com/LizeLing/JSONVisualizer/pkg/errors"
	"github.com/LizeLing/JSONVisualizer/pkg/jsontree"
)

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"html", "text", "json", "dot", "svg", "png"} {
		if err := validateFormat(f); err != nil {
			t.Errorf("validateFormat(%q) = %v, want nil", f, err)
		}
	}

	err := validateFormat("pdf")
	if err == nil {
		t.Fatal("validateFormat should reject unsupported formats")
	}
	if code := apperrors.GetCode(err); code != apperrors.ErrCodeInvalidFormat {
		t.Errorf("error code = %q, want %q", code, apperrors.ErrCodeInvalidFormat)
	}
}

func TestFormatErrorsKeepVerbatimValue(t *testing.T) {
	// Format names come straight from the command line; percent signs must
	// survive into the message instead of being treated as printf verbs.
	err := validateFormat("%s")
	if err == nil {
		t.Fatal("validateFormat should reject", "%s")
	}
	if msg := apperrors.UserMessage(err); !strings.Contains(msg, "invalid format: %s") {
		t.Errorf("message = %q, want the literal format value", msg)
	}

	v, perr := jsontree.ParseBytes([]byte(`{"a": 1}`))
	if perr != nil {
		t.Fatal(perr)
	}
	root, perr := jsontree.Build(v, jsontree.BuildOptions{})
	if perr != nil {
		t.Fatal(perr)
	}
	_, err = renderTree(context.Background(), root, &renderOpts{format: "%d"})
	if err == nil {
		t.Fatal("renderTree should reject unknown formats")
	}
	if msg := apperrors.UserMessage(err); !strings.Contains(msg, "unknown format: %d") {
		t.Errorf("message = %q, want the literal format value", msg)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		format string
		want   string
	}{
		{"explicit output wins", "out.html", "data.json", "html", "out.html"},
		{"derived from input", "", "data.json", "html", "data.html"},
		{"derived keeps directory", "", "dir/data.json", "svg", "dir/data.svg"},
		{"stdin goes to stdout", "", "-", "text", "-"},
		{"explicit stdout", "-", "data.json", "text", "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.input, tt.format); got != tt.want {
				t.Errorf("outputPath(%q, %q, %q) = %q, want %q",
					tt.output, tt.input, tt.format, got, tt.want)
			}
		})
	}
}
