package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/LizeLing/JSONVisualizer/pkg/jsontree"
)

// HTML renders the tree as a collapsible <details>/<summary> fragment.
// Every key and leaf value passes through HTML escaping here, so document
// content containing angle brackets or quotes cannot inject markup.
func HTML(n *jsontree.Node) []byte {
	var buf bytes.Buffer
	writeHTMLNode(&buf, n)
	return buf.Bytes()
}

// HTMLDocument wraps the fragment in a standalone page with embedded styles,
// suitable for writing straight to a file.
func HTMLDocument(n *jsontree.Node) []byte {
	var buf bytes.Buffer
	buf.WriteString(htmlHeader)
	writeHTMLNode(&buf, n)
	buf.WriteString(htmlFooter)
	return buf.Bytes()
}

func writeHTMLNode(buf *bytes.Buffer, n *jsontree.Node) {
	highlight := ""
	if n.Highlighted {
		highlight = " json-highlight"
	}

	if n.Kind.IsContainer() {
		openBr, closeBr := "{", "}"
		if n.Kind == jsontree.KindArray {
			openBr, closeBr = "[", "]"
		}
		openAttr := ""
		if n.DefaultExpanded {
			openAttr = " open"
		}

		fmt.Fprintf(buf, `<div class="tree-node%s"><details%s><summary><span class="json-key">%s</span><span class="bracket">%s</span></summary><div class="tree-content"><ul>`,
			highlight, openAttr, html.EscapeString(n.Key), openBr)
		for _, c := range n.Children {
			buf.WriteString("<li>")
			writeHTMLNode(buf, c)
			buf.WriteString("</li>")
		}
		fmt.Fprintf(buf, `</ul></div></details><span class="bracket">%s</span></div>`, closeBr)
		return
	}

	fmt.Fprintf(buf, `<div class="tree-node%s"><span class="json-key">%s</span>: %s</div>`,
		highlight, html.EscapeString(n.Key), htmlValue(n))
}

// htmlValue wraps the escaped display text in a kind-specific span. Unknown
// kinds render as raw escaped text without styling.
func htmlValue(n *jsontree.Node) string {
	text := html.EscapeString(n.Display)
	if n.Kind == jsontree.KindInvalid {
		return text
	}
	return fmt.Sprintf(`<span class="json-%s">%s</span>`, n.Kind, text)
}

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>JSON Tree</title>
<style>
body { font-family: "Roboto Mono", monospace; background: #1e1e2e; color: #cdd6f4; }
.tree-node { margin-left: 1em; }
.tree-node ul { list-style: none; padding-left: 1em; margin: 0; }
.json-key { color: #89b4fa; }
.json-string { color: #a6e3a1; }
.json-number { color: #fab387; }
.json-boolean { color: #cba6f7; }
.json-null { color: #6c7086; font-style: italic; }
.json-highlight { background: #45475a; border-radius: 3px; }
.bracket { color: #9399b2; }
summary { cursor: pointer; }
</style>
</head>
<body>
<div class="json-container"><div class="tree">`

const htmlFooter = `</div></div>
</body>
</html>
`
