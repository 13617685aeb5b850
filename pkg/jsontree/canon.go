package jsontree

import (
	"fmt"
	"strconv"
	"strings"

	"go4.org/mem"

	"github.com/LizeLing/JSONVisualizer/internal/escape"
)

// AppendCanonical appends the canonical serialization of v to dst and returns
// the extended buffer. The canonical form is compact JSON with object members
// in insertion order, so two calls on the same value always produce identical
// bytes. It is used for substring matching, not for display.
func AppendCanonical(dst []byte, v Value) []byte {
	switch t := v.(type) {
	case String:
		dst = append(dst, '"')
		dst = append(dst, escape.Quote(mem.S(string(t)))...)
		return append(dst, '"')
	case Number:
		return append(dst, t...)
	case Bool:
		return strconv.AppendBool(dst, bool(t))
	case Null:
		return append(dst, "null"...)
	case *Object:
		dst = append(dst, '{')
		for i, m := range t.Members {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = append(dst, '"')
			dst = append(dst, escape.Quote(mem.S(m.Key))...)
			dst = append(dst, '"', ':')
			dst = AppendCanonical(dst, m.Value)
		}
		return append(dst, '}')
	case *Array:
		dst = append(dst, '[')
		for i, el := range t.Values {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendCanonical(dst, el)
		}
		return append(dst, ']')
	default:
		// Unknown values fall back to their raw textual form.
		return fmt.Appendf(dst, "%v", v)
	}
}

// CanonicalString returns the canonical serialization of v as a string.
func CanonicalString(v Value) string {
	return string(AppendCanonical(nil, v))
}

// MarshalJSON renders the string in its canonical form.
func (s String) MarshalJSON() ([]byte, error) { return AppendCanonical(nil, s), nil }

// MarshalJSON renders the number exactly as written in the source document.
func (n Number) MarshalJSON() ([]byte, error) { return AppendCanonical(nil, n), nil }

// MarshalJSON renders the boolean literal.
func (b Bool) MarshalJSON() ([]byte, error) { return AppendCanonical(nil, b), nil }

// MarshalJSON renders the null literal.
func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalJSON renders the object with members in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) { return AppendCanonical(nil, o), nil }

// MarshalJSON renders the array in sequence order.
func (a *Array) MarshalJSON() ([]byte, error) { return AppendCanonical(nil, a), nil }

// matcher performs case-insensitive substring tests against the canonical
// serialization of subtrees. Container serializations are assembled bottom-up
// from memoized child strings, so ancestor tests do not re-walk shared
// subtrees on every level.
type matcher struct {
	term string // lowercased; empty matches nothing
	memo map[Value]string
}

func newMatcher(term string) *matcher {
	return &matcher{term: strings.ToLower(term), memo: make(map[Value]string)}
}

// matchText reports whether the term is a substring of s, ignoring case.
func (m *matcher) matchText(s string) bool {
	if m.term == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), m.term)
}

// matchValue reports whether the term occurs anywhere in the canonical
// serialization of the subtree rooted at v.
func (m *matcher) matchValue(v Value) bool {
	if m.term == "" {
		return false
	}
	return strings.Contains(m.lowerCanon(v), m.term)
}

// lowerCanon returns the lowercase canonical serialization of v. Structural
// characters are unaffected by case folding, so container strings can be
// joined from already-lowered child strings.
func (m *matcher) lowerCanon(v Value) string {
	switch t := v.(type) {
	case *Object:
		if s, ok := m.memo[v]; ok {
			return s
		}
		var sb strings.Builder
		sb.WriteByte('{')
		for i, mb := range t.Members {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('"')
			sb.WriteString(strings.ToLower(escape.String(mb.Key)))
			sb.WriteString(`":`)
			sb.WriteString(m.lowerCanon(mb.Value))
		}
		sb.WriteByte('}')
		s := sb.String()
		m.memo[v] = s
		return s
	case *Array:
		if s, ok := m.memo[v]; ok {
			return s
		}
		var sb strings.Builder
		sb.WriteByte('[')
		for i, el := range t.Values {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(m.lowerCanon(el))
		}
		sb.WriteByte(']')
		s := sb.String()
		m.memo[v] = s
		return s
	default:
		return strings.ToLower(CanonicalString(v))
	}
}
