package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/LizeLing/JSONVisualizer/pkg/jsontree"
)

// TextOptions configures the plain-text sink.
type TextOptions struct {
	// Annotate prefixes highlighted nodes with a marker so search matches
	// stand out without ANSI styling.
	Annotate bool

	// Indent is the per-level indent string. Defaults to two spaces.
	Indent string
}

// Text renders the tree as an indented plain-text listing. The output is
// deterministic: one line per node, children in document order.
func Text(n *jsontree.Node, opts TextOptions) []byte {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	var buf bytes.Buffer
	writeTextNode(&buf, n, opts)
	return buf.Bytes()
}

func writeTextNode(buf *bytes.Buffer, n *jsontree.Node, opts TextOptions) {
	buf.WriteString(strings.Repeat(opts.Indent, n.Depth))
	if opts.Annotate && n.Highlighted {
		buf.WriteString("> ")
	}

	switch n.Kind {
	case jsontree.KindObject:
		fmt.Fprintf(buf, "%s: {%s}\n", n.Key, countLabel(len(n.Children), "key"))
	case jsontree.KindArray:
		fmt.Fprintf(buf, "%s: [%s]\n", n.Key, countLabel(len(n.Children), "item"))
	default:
		fmt.Fprintf(buf, "%s: %s\n", n.Key, n.Display)
	}

	for _, c := range n.Children {
		writeTextNode(buf, c, opts)
	}
}

func countLabel(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
