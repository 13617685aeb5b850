package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/LizeLing/JSONVisualizer/pkg/jsontree"
)

// ToDOT converts the tree to Graphviz DOT format for node-link visualization.
// Containers render as rounded boxes labeled with their key, leaves as boxes
// labeled "key: value". Highlighted nodes get a gold fill. The resulting DOT
// string can be rendered with [SVG] or [PNG].
func ToDOT(n *jsontree.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph JSON {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	id := 0
	writeDOTNode(&buf, n, &id)

	buf.WriteString("}\n")
	return buf.String()
}

// writeDOTNode emits the node and its subtree, returning the node's id.
func writeDOTNode(buf *bytes.Buffer, n *jsontree.Node, next *int) int {
	id := *next
	*next++

	label := n.Key
	if !n.Kind.IsContainer() {
		label = fmt.Sprintf("%s: %s", n.Key, n.Display)
	}

	attrs := fmt.Sprintf("label=%q", label)
	if n.Highlighted {
		attrs += `, fillcolor=gold`
	}
	fmt.Fprintf(buf, "  n%d [%s];\n", id, attrs)

	for _, c := range n.Children {
		childID := writeDOTNode(buf, c, next)
		fmt.Fprintf(buf, "  n%d -> n%d;\n", id, childID)
	}
	return id
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraphviz(ctx, dot, graphviz.SVG)
}

// PNG renders a DOT graph to PNG using Graphviz.
func PNG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraphviz(ctx, dot, graphviz.PNG)
}

func renderGraphviz(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
