package jsontree

import (
	"encoding/json"
	"fmt"

	"github.com/LizeLing/JSONVisualizer/pkg/errors"
)

// autoExpandDepth is the fixed auto-expand policy: container nodes at depth
// less than this render expanded by default, independent of content size or
// match status.
const autoExpandDepth = 2

// A Node is one location of the display tree derived from a Value. Nodes are
// constructed fresh on every Build call and never mutated in place; the
// presentation layer converts them to whatever surface it targets.
type Node struct {
	// Key is the display label: the object key, a synthetic "[i]" for array
	// elements, or the root label.
	Key string `json:"key"`

	// Kind is the classification of the value at this location.
	Kind Kind `json:"-"`

	// Display is the typed display form for leaves: strings quoted, numbers
	// as written, true/false/null literal. Empty for containers.
	Display string `json:"display,omitempty"`

	// Depth is the distance from the root (root = 0).
	Depth int `json:"depth"`

	// DefaultExpanded reports whether a container renders open by default.
	// Always false for leaves.
	DefaultExpanded bool `json:"expanded"`

	// Highlighted is set when the search term occurs in the canonical
	// serialization of this node's entire subtree, ignoring case.
	Highlighted bool `json:"highlighted"`

	// Children holds the ordered child nodes of a container; nil for leaves.
	Children []*Node `json:"children,omitempty"`
}

// MarshalJSON includes the kind's string tag alongside the node fields.
func (n *Node) MarshalJSON() ([]byte, error) {
	type alias Node
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{Kind: n.Kind.String(), alias: (*alias)(n)})
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// BuildOptions configures Build. The zero value renders with the label
// "root", no highlighting, and the default depth guard.
type BuildOptions struct {
	// Label is the root node's display label. Defaults to "root".
	Label string

	// SearchTerm, when non-empty, marks nodes whose subtree serialization
	// contains it (case-insensitive) as highlighted.
	SearchTerm string

	// MaxDepth bounds the render recursion. Defaults to DefaultMaxDepth.
	MaxDepth int
}

// Build derives the display tree for v. It is total over well-formed values
// and deterministic: two calls with the same value and options produce
// structurally identical trees. The only error condition is the depth guard.
func Build(v Value, opts BuildOptions) (*Node, error) {
	if opts.Label == "" {
		opts.Label = "root"
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return build(v, opts.Label, 0, opts.MaxDepth, newMatcher(opts.SearchTerm))
}

func build(v Value, label string, depth, maxDepth int, m *matcher) (*Node, error) {
	if depth > maxDepth {
		return nil, errors.New(errors.ErrCodeDepthExceeded, "nesting exceeds %d levels", maxDepth)
	}

	n := &Node{
		Key:         label,
		Kind:        KindOf(v),
		Depth:       depth,
		Highlighted: m.matchValue(v),
	}

	switch t := v.(type) {
	case *Object:
		n.DefaultExpanded = depth < autoExpandDepth
		n.Children = make([]*Node, 0, len(t.Members))
		for _, mem := range t.Members {
			child, err := build(mem.Value, mem.Key, depth+1, maxDepth, m)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
	case *Array:
		n.DefaultExpanded = depth < autoExpandDepth
		n.Children = make([]*Node, 0, len(t.Values))
		for i, el := range t.Values {
			child, err := build(el, fmt.Sprintf("[%d]", i), depth+1, maxDepth, m)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
	default:
		n.Display = displayValue(v)
	}
	return n, nil
}

// displayValue produces the leaf display form. Any escaping needed for safe
// embedding in markup is the presentation layer's responsibility.
func displayValue(v Value) string {
	switch t := v.(type) {
	case String:
		return `"` + string(t) + `"`
	case Number:
		return string(t)
	case Bool:
		if t {
			return "true"
		}
		return "false"
	case Null:
		return "null"
	default:
		// Unknown values degrade to raw text without styling.
		return fmt.Sprintf("%v", v)
	}
}
