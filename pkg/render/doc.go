// Package render converts display trees produced by jsontree.Build into
// concrete output formats.
//
// The core returns structured nodes, not markup; each sink here is a pure
// emitter over that structure:
//
//   - HTML: collapsible <details>/<summary> markup with all document text
//     escaped at this boundary
//   - Text: plain indented tree for terminals and logs
//   - JSON: the node tree itself, for arbitrary presentation layers
//   - DOT/SVG/PNG: node-link diagrams via Graphviz
package render
