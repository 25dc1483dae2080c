package pipeline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dgallion1/pdfoutline/internal/outline"
	"github.com/dgallion1/pdfoutline/internal/render"
)

const sampleMarkdown = `# Guide

Opening paragraph.

## Install

Download the binary.

## Usage

Run it against a document.
`

func defaultOpts() outline.Options {
	return outline.Options{Max: outline.DefaultMaxLevel, Root: 1}
}

func TestRun_Markdown(t *testing.T) {
	root, err := Run(strings.NewReader(sampleMarkdown), "guide.md", defaultOpts())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if root.Kind != outline.KindRoot {
		t.Fatalf("expected root node, got %q", root.Kind)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected single top heading, got %d", len(root.Children))
	}
	guide := root.Children[0]
	if guide.Text != "Guide" || guide.Level != 1 {
		t.Fatalf("top heading: %+v", guide)
	}

	var sections []string
	for _, c := range guide.Children {
		if c.Kind == outline.KindHeading {
			sections = append(sections, c.Text)
		}
	}
	if len(sections) != 2 || sections[0] != "Install" || sections[1] != "Usage" {
		t.Errorf("unexpected sections: %q", sections)
	}
}

func TestRun_DeterministicOutput(t *testing.T) {
	// Same bytes in, byte-identical JSON out.
	var outputs [][]byte
	for i := 0; i < 3; i++ {
		root, err := Run(strings.NewReader(sampleMarkdown), "guide.md", defaultOpts())
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		b, err := render.JSON(root)
		if err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
		outputs = append(outputs, b)
	}
	if !bytes.Equal(outputs[0], outputs[1]) || !bytes.Equal(outputs[1], outputs[2]) {
		t.Errorf("repeated runs produced different output")
	}
}

func TestRun_UnsupportedExtension(t *testing.T) {
	_, err := Run(strings.NewReader("data"), "sheet.xlsx", defaultOpts())
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "extract sheet.xlsx") {
		t.Errorf("error should name the failing file: %v", err)
	}
}

func TestRun_InvalidOptions(t *testing.T) {
	_, err := Run(strings.NewReader("# x\n"), "x.md", outline.Options{Max: 2, Root: 5})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestRun_EmptyDocument(t *testing.T) {
	_, err := Run(strings.NewReader(""), "empty.md", defaultOpts())
	if err == nil {
		t.Fatal("expected error for document with no text")
	}
	if !strings.Contains(err.Error(), "classify") {
		t.Errorf("error should come from classification: %v", err)
	}
}

func TestRun_PlainTextIsFlat(t *testing.T) {
	src := "one paragraph\n\nanother paragraph\n"
	root, err := Run(strings.NewReader(src), "notes.txt", defaultOpts())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	root.Walk(func(n *outline.Node) {
		if n.Kind == outline.KindHeading {
			t.Errorf("plain text must not produce headings, got %q", n.Text)
		}
	})
}
