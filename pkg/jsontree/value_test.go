package jsontree

import "testing"

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want Kind
	}{
		{"string", String("hi"), KindString},
		{"number", Number("3.14"), KindNumber},
		{"boolean true", Bool(true), KindBoolean},
		{"boolean false", Bool(false), KindBoolean},
		{"null", Null{}, KindNull},
		{"object", &Object{}, KindObject},
		{"array", &Array{}, KindArray},
		{"nil value", nil, KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.v); got != tt.want {
				t.Errorf("KindOf(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestBooleanIsNotNumber(t *testing.T) {
	// Booleans are a distinct kind; they must never render as numbers even
	// though some source ecosystems treat them as numeric subtypes.
	for _, b := range []Bool{true, false} {
		if got := KindOf(b); got == KindNumber {
			t.Fatalf("KindOf(%v) classified a boolean as a number", b)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindString, "string"},
		{KindNumber, "number"},
		{KindBoolean, "boolean"},
		{KindNull, "null"},
		{KindObject, "object"},
		{KindArray, "array"},
		{KindInvalid, "unknown"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestObjectFind(t *testing.T) {
	obj := &Object{Members: []*Member{
		{Key: "a", Value: Number("1")},
		{Key: "b", Value: String("x")},
	}}

	if m := obj.Find("b"); m == nil || m.Value != String("x") {
		t.Errorf("Find(b) = %v", m)
	}
	if m := obj.Find("missing"); m != nil {
		t.Errorf("Find(missing) = %v, want nil", m)
	}
}

func TestCount(t *testing.T) {
	v, err := ParseBytes([]byte(`{"name": "Alice", "age": 30, "tags": ["x", "y"]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Root + 3 keys + 2 elements.
	if got := Count(v); got != 6 {
		t.Errorf("Count = %d, want 6", got)
	}

	if got := Count(Null{}); got != 1 {
		t.Errorf("Count(null) = %d, want 1", got)
	}
}
