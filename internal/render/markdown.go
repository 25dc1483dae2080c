package render

import (
	"strings"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// Markdown renders the tree as a Markdown outline. Heading depth follows
// structural depth in the tree rather than the original rank numbers, so a
// document rooted at rank 3 still starts at "#".
func Markdown(root *outline.Node) []byte {
	var buf strings.Builder
	for _, c := range root.Children {
		writeMarkdown(&buf, c, 1)
	}
	return []byte(buf.String())
}

func writeMarkdown(buf *strings.Builder, n *outline.Node, depth int) {
	switch n.Kind {
	case outline.KindHeading:
		if depth > 6 {
			depth = 6
		}
		buf.WriteString(strings.Repeat("#", depth))
		buf.WriteString(" ")
		buf.WriteString(n.Text)
		buf.WriteString("\n\n")
		for _, c := range n.Children {
			writeMarkdown(buf, c, depth+1)
		}
	case outline.KindParagraph:
		buf.WriteString(n.Text)
		buf.WriteString("\n\n")
	}
}
