package jsontree

import (
	"fmt"
	"strings"

	"github.com/LizeLing/JSONVisualizer/pkg/errors"
)

// A Hit is one search match: a location in the document, its terminal key or
// index label, and the value found there. Paths use dot notation for object
// keys and bracket notation for array indices ("servers[1].host"), so a
// path's prefix chain reconstructs the ancestor chain and sibling paths are
// always distinct.
type Hit struct {
	Path  string `json:"path"`
	Key   string `json:"key"`
	Value Value  `json:"value"`
}

// SearchOptions configures Search. The zero value uses the default depth
// guard.
type SearchOptions struct {
	// MaxDepth bounds the search recursion. Defaults to DefaultMaxDepth.
	MaxDepth int
}

// Search walks v in pre-order and returns hits for every location where term
// occurs, ignoring case. Hits respect document order: parents before
// descendants, members and elements in insertion order, deterministic across
// repeated calls.
//
// A hit is reported at the most specific matching location: an object member
// matches on its key, a leaf matches on its canonical serialization (array
// leaf elements included, at their "[i]" path). Container values are not
// re-reported for content that a descendant already accounts for; ancestor
// context for such matches is carried by Build's highlight flag instead.
//
// Blank terms are rejected with ErrCodeInvalidTerm; the walk itself never
// fails on well-formed values apart from the depth guard.
func Search(v Value, term string, opts SearchOptions) ([]Hit, error) {
	if strings.TrimSpace(term) == "" {
		return nil, errors.New(errors.ErrCodeInvalidTerm, "search term must not be blank")
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	s := &searcher{m: newMatcher(term), maxDepth: opts.MaxDepth}
	if err := s.walk(v, "", 0); err != nil {
		return nil, err
	}
	return s.hits, nil
}

type searcher struct {
	m        *matcher
	maxDepth int
	hits     []Hit
}

func (s *searcher) walk(v Value, path string, depth int) error {
	if depth > s.maxDepth {
		return errors.New(errors.ErrCodeDepthExceeded, "nesting exceeds %d levels", s.maxDepth)
	}

	switch t := v.(type) {
	case *Object:
		for _, m := range t.Members {
			childPath := joinKey(path, m.Key)
			if s.m.matchText(m.Key) || s.leafMatch(m.Value) {
				s.hits = append(s.hits, Hit{Path: childPath, Key: m.Key, Value: m.Value})
			}
			if err := s.walk(m.Value, childPath, depth+1); err != nil {
				return err
			}
		}
	case *Array:
		// Array slots have no keys to match; leaf elements are tested on
		// their own serialization, containers by recursion.
		for i, el := range t.Values {
			childPath := fmt.Sprintf("%s[%d]", path, i)
			if s.leafMatch(el) {
				s.hits = append(s.hits, Hit{Path: childPath, Key: fmt.Sprintf("[%d]", i), Value: el})
			}
			if err := s.walk(el, childPath, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// leafMatch reports whether v is a leaf whose serialization contains the
// term. Containers always report false here; their content surfaces through
// key matches and leaf matches further down.
func (s *searcher) leafMatch(v Value) bool {
	if KindOf(v).IsContainer() {
		return false
	}
	return s.m.matchValue(v)
}

// joinKey appends an object key to a path: bare at the root, dot-separated
// below it.
func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
