package extract

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor pulls styled text spans out of a PDF's embedded text layer.
type PDFExtractor struct{}

func (p *PDFExtractor) Extract(r io.Reader, filename string) ([]Run, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "pdfoutline-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var runs []Run
	order := 0
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		texts := page.Content().Text
		runs = append(runs, mergeTexts(texts, i-1, &order)...)
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("extract pdf %s: no text layer found", filename)
	}
	return runs, nil
}

// wordGapFactor is the fraction of the font size a horizontal gap must
// exceed to count as a word boundary.
const wordGapFactor = 0.3

// lineTolerance groups glyphs whose baselines differ by at most this many
// points onto the same line.
const lineTolerance = 2.0

// mergeTexts folds per-glyph pdf.Text elements into style-uniform runs.
// Glyphs are sorted into reading order (top to bottom, left to right), then
// concatenated; a new run starts whenever the rounded font size or font
// name changes.
func mergeTexts(texts []pdflib.Text, page int, order *int) []Run {
	glyphs := make([]pdflib.Text, 0, len(texts))
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		glyphs = append(glyphs, t)
	}
	if len(glyphs) == 0 {
		return nil
	}

	sort.SliceStable(glyphs, func(i, j int) bool {
		if math.Abs(glyphs[i].Y-glyphs[j].Y) > lineTolerance {
			return glyphs[i].Y > glyphs[j].Y // PDF origin is bottom-left
		}
		return glyphs[i].X < glyphs[j].X
	})

	var runs []Run
	var buf strings.Builder
	cur := glyphs[0]
	buf.WriteString(cur.S)
	prev := cur

	flush := func() {
		text := buf.String()
		if strings.TrimSpace(text) != "" {
			runs = append(runs, Run{
				Text:     text,
				FontSize: cur.FontSize,
				FontName: cur.Font,
				Page:     page,
				Order:    *order,
			})
			*order++
		}
		buf.Reset()
	}

	for _, g := range glyphs[1:] {
		sameStyle := Quantize(g.FontSize) == Quantize(cur.FontSize) && g.Font == cur.Font
		if !sameStyle {
			flush()
			cur = g
			buf.WriteString(g.S)
			prev = g
			continue
		}
		if math.Abs(g.Y-prev.Y) > lineTolerance {
			// Line break within the same style: join with a space.
			if !strings.HasSuffix(buf.String(), " ") {
				buf.WriteString(" ")
			}
		} else if gap := g.X - (prev.X + prev.W); gap > wordGapFactor*g.FontSize {
			if !strings.HasSuffix(buf.String(), " ") {
				buf.WriteString(" ")
			}
		}
		buf.WriteString(g.S)
		prev = g
	}
	flush()
	return runs
}
