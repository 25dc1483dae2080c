// Package render serializes a built outline tree into its output formats.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

type jsonRoot struct {
	Type     string     `json:"type"`
	Children []jsonNode `json:"children"`
}

type jsonHeading struct {
	Type     string     `json:"type"`
	Level    int        `json:"level"`
	Text     string     `json:"text"`
	Children []jsonNode `json:"children"`
}

type jsonParagraph struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// jsonNode wraps an outline node so each kind serializes with exactly the
// keys its shape calls for.
type jsonNode struct {
	n *outline.Node
}

func (j jsonNode) MarshalJSON() ([]byte, error) {
	switch j.n.Kind {
	case outline.KindRoot:
		return json.Marshal(jsonRoot{Type: "root", Children: wrapChildren(j.n)})
	case outline.KindHeading:
		return json.Marshal(jsonHeading{
			Type:     "heading",
			Level:    j.n.Level,
			Text:     j.n.Text,
			Children: wrapChildren(j.n),
		})
	case outline.KindParagraph:
		return json.Marshal(jsonParagraph{Type: "paragraph", Text: j.n.Text})
	default:
		return nil, fmt.Errorf("unknown node kind %q", j.n.Kind)
	}
}

func wrapChildren(n *outline.Node) []jsonNode {
	out := make([]jsonNode, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, jsonNode{n: c})
	}
	return out
}

// JSON renders the tree as an indented JSON document. Output is
// deterministic: identical trees produce byte-identical bytes.
func JSON(root *outline.Node) ([]byte, error) {
	b, err := json.MarshalIndent(jsonNode{n: root}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tree: %w", err)
	}
	return append(b, '\n'), nil
}
