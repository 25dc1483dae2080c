package render

import (
	"bytes"
	"fmt"

	"github.com/dgallion1/pdfoutline/internal/outline"
	"github.com/yuin/goldmark"
)

const htmlHeader = `<!doctype html>
<html>
<head><meta charset="utf-8"></head>
<body>
`

const htmlFooter = `</body>
</html>
`

// HTML renders the tree as a standalone HTML page by converting the
// Markdown rendering with goldmark.
func HTML(root *outline.Node) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(htmlHeader)
	if err := goldmark.Convert(Markdown(root), &buf); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	buf.WriteString(htmlFooter)
	return buf.Bytes(), nil
}
