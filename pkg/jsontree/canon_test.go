package jsontree

import (
	"encoding/json"
	"testing"
)

func mustParse(t *testing.T, src string) Value {
	t.Helper()
	v, err := ParseBytes([]byte(src))
	if err != nil {
		t.Fatalf("ParseBytes(%q): %v", src, err)
	}
	return v
}

func TestCanonicalString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"compact object", `{ "a" : 1 , "b" : [ true , null ] }`, `{"a":1,"b":[true,null]}`},
		{"string escapes", `{"msg": "line\nbreak \"quoted\""}`, `{"msg":"line\nbreak \"quoted\""}`},
		{"number text kept", `[30, 30.0]`, `[30,30.0]`},
		{"empty containers", `{"o": {}, "a": []}`, `{"o":{},"a":[]}`},
		{"scalar root", `"x"`, `"x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalString(mustParse(t, tt.input)); got != tt.want {
				t.Errorf("CanonicalString = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCanonicalStringStable(t *testing.T) {
	v := mustParse(t, `{"b": {"x": [1, "two", false]}, "a": null}`)

	first := CanonicalString(v)
	for i := 0; i < 5; i++ {
		if got := CanonicalString(v); got != first {
			t.Fatalf("call %d produced %s, first call produced %s", i+2, got, first)
		}
	}
}

func TestValueMarshalJSONRoundTrip(t *testing.T) {
	src := `{"name":"Alice","age":30,"tags":["x","y"],"meta":{"ok":true,"n":null}}`
	v := mustParse(t, src)

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != src {
		t.Errorf("Marshal = %s, want %s (member order must survive marshaling)", data, src)
	}
}

func TestMatcherMemoizedCanon(t *testing.T) {
	v := mustParse(t, `{"Outer": {"Inner": "MixedCase"}}`)
	m := newMatcher("mixedcase")

	if !m.matchValue(v) {
		t.Error("term should match nested string, ignoring case")
	}
	// Memoized container serializations must agree with the direct one.
	inner := v.(*Object).Members[0].Value
	if got, want := m.lowerCanon(inner), `{"inner":"mixedcase"}`; got != want {
		t.Errorf("lowerCanon = %s, want %s", got, want)
	}
	if got, ok := m.memo[inner]; !ok || got != `{"inner":"mixedcase"}` {
		t.Errorf("memo entry = %q, ok=%v", got, ok)
	}
}

func TestMatcherEmptyTerm(t *testing.T) {
	m := newMatcher("")
	if m.matchText("anything") {
		t.Error("empty term matched text")
	}
	if m.matchValue(String("anything")) {
		t.Error("empty term matched value")
	}
}
