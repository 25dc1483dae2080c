package extract

import (
	"testing"
)

func TestForFile(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"report.pdf", "*extract.PDFExtractor"},
		{"notes.docx", "*extract.DOCXExtractor"},
		{"readme.md", "*extract.MarkdownExtractor"},
		{"readme.markdown", "*extract.MarkdownExtractor"},
		{"page.html", "*extract.HTMLExtractor"},
		{"page.htm", "*extract.HTMLExtractor"},
		{"plain.txt", "*extract.TextExtractor"},
		{"REPORT.PDF", "*extract.PDFExtractor"},
	}
	for _, tc := range cases {
		e, err := ForFile(tc.filename)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.filename, err)
			continue
		}
		if got := typeName(e); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.filename, got, tc.want)
		}
	}

	if _, err := ForFile("image.png"); err == nil {
		t.Errorf("expected error for unsupported extension")
	}
	if _, err := ForFile("noextension"); err == nil {
		t.Errorf("expected error for missing extension")
	}
}

func typeName(e Extractor) string {
	switch e.(type) {
	case *PDFExtractor:
		return "*extract.PDFExtractor"
	case *DOCXExtractor:
		return "*extract.DOCXExtractor"
	case *MarkdownExtractor:
		return "*extract.MarkdownExtractor"
	case *HTMLExtractor:
		return "*extract.HTMLExtractor"
	case *TextExtractor:
		return "*extract.TextExtractor"
	}
	return "unknown"
}

func TestIsSupportedExtension(t *testing.T) {
	for _, name := range []string{"a.pdf", "b.docx", "c.md", "d.html", "e.txt", "F.HTM"} {
		if !IsSupportedExtension(name) {
			t.Errorf("%s should be supported", name)
		}
	}
	for _, name := range []string{"a.png", "b.csv", "c", ".pdfx"} {
		if IsSupportedExtension(name) {
			t.Errorf("%s should not be supported", name)
		}
	}
}

func TestQuantize(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{12.0, 12.0},
		{11.98, 12.0},
		{12.24, 12.0},
		{12.26, 12.5},
		{12.5, 12.5},
		{11.76, 12.0},
		{9.2, 9.0},
	}
	for _, tc := range cases {
		if got := Quantize(tc.in); got != tc.want {
			t.Errorf("Quantize(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNominalHeadingSize(t *testing.T) {
	// Sizes descend strictly with level and stay above body size, so
	// declared-structure formats classify the same way sized text does.
	prev := nominalHeadingSize(1)
	for level := 2; level <= 6; level++ {
		s := nominalHeadingSize(level)
		if s >= prev {
			t.Errorf("level %d size %v not below level %d size %v", level, s, level-1, prev)
		}
		prev = s
	}
	if nominalHeadingSize(6) <= nominalBodySize {
		t.Errorf("deepest heading size %v must exceed body size %v", nominalHeadingSize(6), nominalBodySize)
	}
	if nominalHeadingSize(0) != nominalHeadingSize(1) {
		t.Errorf("out-of-range levels should clamp")
	}
	if nominalHeadingSize(9) != nominalHeadingSize(6) {
		t.Errorf("out-of-range levels should clamp")
	}
}
