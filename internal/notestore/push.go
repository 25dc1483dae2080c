package notestore

import (
	"context"
	"strings"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// PushTree walks a built tree and stores one note per heading, keyed by its
// breadcrumb path under docTitle. Paragraph children become the note's
// text; parent-child heading pairs get a link. Returns the number of notes
// stored.
func (c *Client) PushTree(ctx context.Context, docTitle string, root *outline.Node) (int, error) {
	count := 0
	base := slugify(docTitle)
	var walk func(n *outline.Node, breadcrumb []string, parentKey string) error
	walk = func(n *outline.Node, breadcrumb []string, parentKey string) error {
		for _, child := range n.Children {
			if child.Kind != outline.KindHeading {
				continue
			}
			bc := append(append([]string(nil), breadcrumb...), slugify(child.Text))
			key := base + "/" + strings.Join(bc, "/")

			req := NoteRequest{
				Title:  child.Text,
				Text:   paragraphText(child),
				Level:  child.Level,
				Source: docTitle,
			}
			if err := withRetry(ctx, func() error { return c.PutNote(ctx, key, req) }); err != nil {
				return err
			}
			count++

			if parentKey != "" {
				link := LinkRequest{From: parentKey, To: key}
				if err := withRetry(ctx, func() error { return c.PutLink(ctx, link) }); err != nil {
					return err
				}
			}
			if err := walk(child, bc, key); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root, nil, ""); err != nil {
		return count, err
	}
	return count, nil
}

// paragraphText joins a heading's immediate paragraph children.
func paragraphText(n *outline.Node) string {
	var parts []string
	for _, c := range n.Children {
		if c.Kind == outline.KindParagraph {
			parts = append(parts, c.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}

// slugify lowercases a title and collapses non-alphanumerics to hyphens.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
