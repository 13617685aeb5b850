package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tailscale/hujson"

	"github.com/LizeLing/JSONVisualizer/pkg/errors"
)

// DefaultMaxDepth is the nesting depth limit applied by Parse, Build, and
// Search when no explicit limit is given. Documents nested deeper than this
// fail fast with ErrCodeDepthExceeded instead of exhausting the stack.
const DefaultMaxDepth = 200

// Normalize strips // line comments, /* */ block comments, and trailing
// commas from data, leaving standard JSON. Comment-like sequences inside
// string literals are preserved, including across escaped quotes. Input that
// is already standard JSON passes through unchanged.
func Normalize(data []byte) ([]byte, error) {
	norm, err := hujson.Standardize(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParseFailure, err, "invalid JSON")
	}
	return norm, nil
}

// Parse reads a single JSON value from r. See ParseBytes.
func Parse(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParseFailure, err, "read input")
	}
	return ParseBytes(data)
}

// ParseBytes decodes data into a Value, preserving object key order. Input
// may contain comments and trailing commas; it is normalized before decoding.
// On malformed input the error carries ErrCodeParseFailure with a
// human-readable reason and byte offset, and no partial tree is returned.
func ParseBytes(data []byte) (Value, error) {
	norm, err := Normalize(data)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(norm))
	dec.UseNumber()

	v, err := decodeValue(dec, 0)
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeParseFailure, err, "invalid JSON at offset %d", dec.InputOffset())
	}
	if dec.More() {
		return nil, errors.New(errors.ErrCodeParseFailure, "unexpected trailing data at offset %d", dec.InputOffset())
	}
	return v, nil
}

// decodeValue reads the next complete value from the token stream.
func decodeValue(dec *json.Decoder, depth int) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("unexpected end of input")
		}
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		if depth >= DefaultMaxDepth {
			return nil, errors.New(errors.ErrCodeDepthExceeded, "nesting exceeds %d levels", DefaultMaxDepth)
		}
		switch t {
		case '{':
			return decodeObject(dec, depth)
		case '[':
			return decodeArray(dec, depth)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// decodeObject reads members until the closing brace, keeping them in
// document order.
func decodeObject(dec *json.Decoder, depth int) (*Object, error) {
	obj := &Object{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not a string", keyTok)
		}
		val, err := decodeValue(dec, depth+1)
		if err != nil {
			return nil, err
		}
		obj.Members = append(obj.Members, &Member{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder, depth int) (*Array, error) {
	arr := &Array{}
	for dec.More() {
		el, err := decodeValue(dec, depth+1)
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, el)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return arr, nil
}
