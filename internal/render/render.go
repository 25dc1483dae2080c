package render

import (
	"fmt"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// Formats lists the supported output formats.
var Formats = map[string]bool{
	"json":     true,
	"markdown": true,
	"md":       true,
	"html":     true,
}

// Render serializes the tree in the named format.
func Render(root *outline.Node, format string) ([]byte, error) {
	switch format {
	case "", "json":
		return JSON(root)
	case "markdown", "md":
		return Markdown(root), nil
	case "html":
		return HTML(root)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// ContentType returns the MIME type for a format.
func ContentType(format string) string {
	switch format {
	case "markdown", "md":
		return "text/markdown; charset=utf-8"
	case "html":
		return "text/html; charset=utf-8"
	default:
		return "application/json"
	}
}
