package extract

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"
)

// Run is an atomic span of extracted text with uniform style.
// Runs are created once during extraction and read-only afterwards.
type Run struct {
	Text     string  // raw text of the span; may be whitespace-only
	FontSize float64 // extractor-reported point size
	FontName string  // font identifier, secondary signal only
	Color    uint32  // 0xRRGGBB fill color; zero when the backend reports none
	Page     int     // zero-based page index
	Order    int     // document-wide reading order, strictly increasing
}

// Extractor converts raw document bytes into an ordered run sequence.
type Extractor interface {
	Extract(r io.Reader, filename string) ([]Run, error)
}

// SupportedExtensions lists file extensions this tool can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".txt":      true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".txt":
		return &TextExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Nominal point sizes for formats that declare heading levels outright
// (markdown, html, docx). Mapping declared levels onto a descending size
// ladder lets the style classifier treat every backend uniformly.
const nominalBodySize = 12.0

func nominalHeadingSize(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return 24.0 - 2.0*float64(level-1)
}

// Quantize snaps a font size to the nearest half point, absorbing
// floating-point rendering noise. All size comparisons in the pipeline go
// through this.
func Quantize(size float64) float64 {
	return math.Round(size*2) / 2
}
