package ast

import "akhil.cc/editable/style"

// NodeID addresses a node in a Document. IDs are stable for the lifetime of
// the document: a node keeps its ID when it is moved, and a removed node's ID
// is never reused.
type NodeID int32

// Nil is the zero NodeID. It never addresses a node.
const Nil NodeID = 0

type Kind uint8

const (
	Root Kind = iota
	Block
	List
	Span
	Anchor
	Text
	// Placeholder is the empty marker that keeps an otherwise empty block or
	// span selectable. It has no text.
	Placeholder
)

var kinds = [...]string{
	Root:        "root",
	Block:       "block",
	List:        "list",
	Span:        "span",
	Anchor:      "anchor",
	Text:        "text",
	Placeholder: "placeholder",
}

func (k Kind) String() string {
	if int(k) < len(kinds) {
		return kinds[k]
	}
	return "invalid"
}

// Inline reports whether nodes of kind k live inside blocks.
func (k Kind) Inline() bool {
	return k == Span || k == Anchor || k == Text || k == Placeholder
}

// Leaf reports whether nodes of kind k never have children.
func (k Kind) Leaf() bool {
	return k == Text || k == Placeholder
}

// Tag is the element tag of a Block or List.
type Tag uint8

const (
	NoTag Tag = iota
	P
	H1
	H2
	H3
	H4
	H5
	H6
	LI
	OL
	UL
)

var tags = [...]string{
	NoTag: "",
	P:     "p",
	H1:    "h1",
	H2:    "h2",
	H3:    "h3",
	H4:    "h4",
	H5:    "h5",
	H6:    "h6",
	LI:    "li",
	OL:    "ol",
	UL:    "ul",
}

func (t Tag) String() string {
	if int(t) < len(tags) {
		return tags[t]
	}
	return ""
}

// ParseTag returns the Tag named s.
func ParseTag(s string) (Tag, bool) {
	for i := P; int(i) < len(tags); i++ {
		if tags[i] == s {
			return i, true
		}
	}
	return NoTag, false
}

func (t Tag) Heading() bool {
	return t >= H1 && t <= H6
}

// Node is one element of the document tree. Fields are read freely; structure
// changes go through Document methods so parent links stay consistent.
type Node struct {
	ID       NodeID
	Kind     Kind
	Tag      Tag
	Parent   NodeID
	Children []NodeID

	// Names and CSS are kept in lockstep by SetStyles.
	Names style.Names
	CSS   string

	// Text holds the literal text of a Text leaf.
	Text string

	// Href and NewTab describe an Anchor.
	Href   string
	NewTab bool
}

// Walker is called for every node visited by Walk.
type Walker func(*Node) error

// Walk visits id and its descendants depth-first, parents before children.
// It stops at the first error returned by f.
func Walk(d *Document, id NodeID, f Walker) error {
	n := d.Node(id)
	if n == nil {
		return nil
	}
	if err := f(n); err != nil {
		return err
	}
	for _, c := range append([]NodeID(nil), n.Children...) {
		if err := Walk(d, c, f); err != nil {
			return err
		}
	}
	return nil
}
