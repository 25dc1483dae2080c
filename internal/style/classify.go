// Package style builds a ranked style table from a document's styled runs:
// which font sizes count as heading levels, and which size is body text.
package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/pdfoutline/internal/extract"
)

// ErrNoText indicates the document had no classifiable text.
var ErrNoText = errors.New("no classifiable text in document")

// Level is a classification bucket for one font size.
type Level struct {
	Rank int     // 1..K for headings (1 = largest); 0 for body and sub-body buckets
	Tag  string  // "h1".."hK", "body", or "s1".."sM" for sizes below body
	Size float64 // representative (quantized) font size
}

// Heading reports whether the level is a real heading rank.
func (l Level) Heading() bool {
	return l.Rank > 0
}

// Table is the immutable style table for one document. It is computed once
// from the full run set and passed by value into the hierarchy builder.
type Table struct {
	Body     Level
	Headings []Level // rank 1..K, strictly decreasing size
	Subs     []Level // sizes below body, folded into body for structure

	bySize map[float64]Level
}

// LevelFor looks up the level for a raw (unquantized) font size.
func (t Table) LevelFor(size float64) (Level, bool) {
	l, ok := t.bySize[extract.Quantize(size)]
	return l, ok
}

// MaxRank returns the deepest heading rank present in the document.
func (t Table) MaxRank() int {
	return len(t.Headings)
}

// Classify runs a full pass over the document's runs and derives the style
// table. The size bucket with the greatest total character count becomes
// body; every strictly larger size becomes a heading rank ordered largest
// to smallest; smaller sizes (footnotes, captions) fold into body but keep
// distinct s-tags so they stay addressable by the drop filter. Ties on
// character count break toward the size seen first in reading order.
func Classify(runs []extract.Run) (Table, error) {
	type group struct {
		size      float64
		chars     int
		firstSeen int
	}
	groups := make(map[float64]*group)

	for _, run := range runs {
		text := strings.TrimSpace(run.Text)
		if text == "" {
			continue
		}
		size := extract.Quantize(run.FontSize)
		g, ok := groups[size]
		if !ok {
			g = &group{size: size, firstSeen: run.Order}
			groups[size] = g
		}
		g.chars += utf8.RuneCountInString(text)
	}
	if len(groups) == 0 {
		return Table{}, ErrNoText
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].chars != ordered[j].chars {
			return ordered[i].chars > ordered[j].chars
		}
		return ordered[i].firstSeen < ordered[j].firstSeen
	})
	bodySize := ordered[0].size

	var larger, smaller []float64
	for size := range groups {
		switch {
		case size > bodySize:
			larger = append(larger, size)
		case size < bodySize:
			smaller = append(smaller, size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(larger)))
	sort.Sort(sort.Reverse(sort.Float64Slice(smaller)))

	t := Table{
		Body:   Level{Tag: "body", Size: bodySize},
		bySize: make(map[float64]Level, len(groups)),
	}
	t.bySize[bodySize] = t.Body
	for i, size := range larger {
		l := Level{Rank: i + 1, Tag: fmt.Sprintf("h%d", i+1), Size: size}
		t.Headings = append(t.Headings, l)
		t.bySize[size] = l
	}
	for i, size := range smaller {
		l := Level{Tag: fmt.Sprintf("s%d", i+1), Size: size}
		t.Subs = append(t.Subs, l)
		t.bySize[size] = l
	}
	return t, nil
}
