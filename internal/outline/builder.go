package outline

import (
	"fmt"
	"strings"

	"github.com/dgallion1/pdfoutline/internal/extract"
	"github.com/dgallion1/pdfoutline/internal/style"
)

// DefaultMaxLevel and DefaultRootLevel match the original tool's defaults
// (deepest heading h6, tree rooted at h2).
const (
	DefaultMaxLevel  = 6
	DefaultRootLevel = 2
)

// ShallowPolicy decides what happens to headings whose rank is shallower
// than the configured root level.
type ShallowPolicy string

const (
	// ShallowSkip discards the heading's own text without touching the
	// open-heading stack. Out-of-scope headings do not reset context.
	ShallowSkip ShallowPolicy = "skip"
	// ShallowText degrades the heading to paragraph content.
	ShallowText ShallowPolicy = "text"
)

// Options control how the tree is assembled.
type Options struct {
	Max     int           // deepest heading rank retained as structure
	Root    int           // rank treated as the top of the output tree
	Shallow ShallowPolicy // policy for headings shallower than Root
	Drop    []string      // style-tag substrings whose paragraphs are discarded
	Reverse bool          // reverse paragraph order under each node
}

// Validate rejects option combinations before any pipeline work happens.
func (o Options) Validate() error {
	if o.Max < 1 {
		return fmt.Errorf("max level must be positive, got %d", o.Max)
	}
	if o.Root < 1 {
		return fmt.Errorf("root level must be positive, got %d", o.Root)
	}
	if o.Root > o.Max {
		return fmt.Errorf("root level %d exceeds max level %d", o.Root, o.Max)
	}
	switch o.Shallow {
	case "", ShallowSkip, ShallowText:
	default:
		return fmt.Errorf("unknown shallow-heading policy %q", o.Shallow)
	}
	return nil
}

// Build runs a single pass over the classified run stream and produces the
// output tree. The open-heading chain is an explicit stack seeded with a
// synthetic root so behavior stays bounded regardless of document size.
func Build(runs []extract.Run, table style.Table, opts Options) (*Node, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	shallow := opts.Shallow
	if shallow == "" {
		shallow = ShallowSkip
	}

	root := &Node{Kind: KindRoot}
	type frame struct {
		node *Node
		rank int
	}
	stack := []frame{{node: root, rank: opts.Root - 1}}
	top := func() frame { return stack[len(stack)-1] }

	for _, run := range runs {
		text := normalizeSpace(run.Text)
		if text == "" {
			continue
		}
		level, ok := table.LevelFor(run.FontSize)
		if !ok {
			// Size unseen by the classifier; treat as body.
			level = table.Body
		}

		if level.Heading() {
			r := level.Rank
			switch {
			case r < opts.Root:
				if shallow == ShallowText {
					appendParagraph(top().node, text)
				}
			case r > opts.Max:
				appendParagraph(top().node, text)
			default:
				for len(stack) > 1 && top().rank >= r {
					stack = stack[:len(stack)-1]
				}
				n := &Node{Kind: KindHeading, Level: r, Text: text}
				parent := top().node
				parent.Children = append(parent.Children, n)
				stack = append(stack, frame{node: n, rank: r})
			}
			continue
		}

		if dropped(level.Tag, opts.Drop) {
			continue
		}
		appendParagraph(top().node, text)
	}

	if opts.Reverse {
		reverseParagraphs(root)
	}
	return root, nil
}

// appendParagraph attaches body text to the deepest open node, merging
// contiguous body runs into a single paragraph child.
func appendParagraph(parent *Node, text string) {
	if n := len(parent.Children); n > 0 {
		last := parent.Children[n-1]
		if last.Kind == KindParagraph {
			last.Text += "\n" + text
			return
		}
	}
	parent.Children = append(parent.Children, &Node{Kind: KindParagraph, Text: text})
}

func dropped(tag string, drop []string) bool {
	for _, d := range drop {
		if d != "" && strings.Contains(tag, d) {
			return true
		}
	}
	return false
}

// reverseParagraphs reverses the merged body lines inside every paragraph
// node, leaving heading positions untouched. Contiguous body runs are joined
// with newlines during the build, so line order is paragraph order.
func reverseParagraphs(n *Node) {
	if n.Kind == KindParagraph {
		lines := strings.Split(n.Text, "\n")
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
		n.Text = strings.Join(lines, "\n")
		return
	}
	for _, c := range n.Children {
		reverseParagraphs(c)
	}
}

// normalizeSpace collapses whitespace runs to single spaces and trims.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
