package escape

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash`, `back\\slash`},
		{"tab\tnewline\n", `tab\tnewline\n`},
		{"bell\x07", `bell\u0007`},
		{"héllo wörld", "héllo wörld"},
		{"emoji \U0001f332", "emoji \U0001f332"},
	}

	for _, tt := range tests {
		if got := String(tt.input); got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
