package render

import (
	"encoding/json"

	"github.com/LizeLing/JSONVisualizer/pkg/jsontree"
)

// JSON marshals the node tree itself, preserving child order and per-node
// display metadata. This is the structured output contract for presentation
// layers that build their own UI from the tree.
func JSON(n *jsontree.Node) ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}
