// Package outline assembles classified styled runs into a nested document
// tree whose structure follows heading rank.
package outline

// Kind discriminates the node types in the output tree.
type Kind string

const (
	KindRoot      Kind = "root"
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
)

// Node is an element of the output hierarchy. A heading's children hold
// only strictly deeper headings and paragraphs, in reading order.
type Node struct {
	Kind     Kind
	Level    int    // heading rank; zero for root and paragraph nodes
	Text     string // heading title, or merged paragraph text
	Children []*Node
}

// Walk visits n and all of its descendants in reading order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
