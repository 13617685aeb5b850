// Package escape implements JSON string escaping used by the canonical
// serializer.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes a string to escape characters for inclusion in a JSON string.
// The result does not include the surrounding quotation marks.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())

	for src.Len() > 0 {
		r, n := mem.DecodeRune(src)
		if r < utf8.RuneSelf {
			switch {
			case r < ' ':
				if b := controlEsc[r]; b != 0 {
					buf = append(buf, '\\', b)
				} else {
					buf = append(buf, '\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
				}
			case r == '\\' || r == '"':
				buf = append(buf, '\\', byte(r))
			default:
				buf = append(buf, byte(r))
			}
			src = src.SliceFrom(n)
			continue
		}

		var rbuf [utf8.UTFMax]byte
		w := utf8.EncodeRune(rbuf[:], r)
		buf = append(buf, rbuf[:w]...)
		src = src.SliceFrom(n)
	}
	return buf
}

// String is a convenience wrapper around Quote for string input and output.
func String(s string) string { return string(Quote(mem.S(s))) }
