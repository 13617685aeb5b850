package jsontree

import "strconv"

// Kind identifies the JSON variant stored in a Value.
type Kind int

// The six JSON kinds, plus KindInvalid as a defensive fallback for values the
// classifier does not recognize. KindInvalid is never produced by Parse.
const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindNull
	KindObject
	KindArray
)

var kindNames = [...]string{
	KindInvalid: "unknown",
	KindString:  "string",
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindNull:    "null",
	KindObject:  "object",
	KindArray:   "array",
}

// String returns the lowercase tag name for k, or "unknown" for values
// outside the defined range.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsContainer reports whether k is an object or array kind.
func (k Kind) IsContainer() bool { return k == KindObject || k == KindArray }

// A Value is an arbitrary JSON value. The concrete type is one of String,
// Number, Bool, Null, *Object, or *Array.
type Value interface{ Kind() Kind }

// KindOf classifies v, returning exactly one kind tag. A nil or unrecognized
// value classifies as KindInvalid; such values render as their raw textual
// form without styling. Boolean values are their own kind and never classify
// as numbers.
func KindOf(v Value) Kind {
	if v == nil {
		return KindInvalid
	}
	return v.Kind()
}

// String is a JSON string value holding its decoded text.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return KindString }

// Number is a JSON number. The source text is retained so values render
// exactly as written (30 stays "30", not "30.000000").
type Number string

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return KindNumber }

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Int64 returns the number as an int64, if it is an integer.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// Bool is a JSON boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return KindBoolean }

// Null represents the JSON null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return KindNull }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Object is an ordered collection of key-value members. Insertion order is
// preserved and significant for rendering and search.
type Object struct {
	Members []*Member
}

// Kind satisfies the Value interface.
func (*Object) Kind() Kind { return KindObject }

// Len returns the number of members of o.
func (o *Object) Len() int { return len(o.Members) }

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// An Array is an ordered sequence of values.
type Array struct {
	Values []Value
}

// Kind satisfies the Value interface.
func (*Array) Kind() Kind { return KindArray }

// Len returns the number of elements of a.
func (a *Array) Len() int { return len(a.Values) }

// Count returns the total number of locations in the subtree rooted at v: one
// for v itself plus one per object key and array element, recursively.
func Count(v Value) int {
	switch t := v.(type) {
	case nil:
		return 0
	case *Object:
		n := 1
		for _, m := range t.Members {
			n += Count(m.Value)
		}
		return n
	case *Array:
		n := 1
		for _, el := range t.Values {
			n += Count(el)
		}
		return n
	default:
		return 1
	}
}
