// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package ast holds the editable document tree.
//
// A Document is an arena of nodes addressed by NodeID. The root holds blocks
// (p, h1-h6) and lists (ol, ul); lists hold li blocks; blocks hold inline
// nodes: text runs, styled spans, anchors and placeholders.
//
// Constructors and queries never change the tree. Structural edits detach a
// node from its old parent before attaching it to the new one.
package ast // import "akhil.cc/editable/ast"

import "akhil.cc/editable/style"

// ZeroWidth is the persisted form of a Placeholder.
const ZeroWidth = "\u200b"

// Document is an arena of nodes rooted at Root().
type Document struct {
	nodes []*Node
	root  NodeID
}

// New returns a document with an empty root. Callers add at least one block
// before handing it to an editor.
func New() *Document {
	d := &Document{nodes: []*Node{nil}}
	d.root = d.add(&Node{Kind: Root})
	return d
}

// NewEmpty returns a document holding a single placeholder paragraph.
func NewEmpty() *Document {
	d := New()
	d.AppendChild(d.root, d.CreateBlock(P, ""))
	return d
}

func (d *Document) add(n *Node) NodeID {
	n.ID = NodeID(len(d.nodes))
	d.nodes = append(d.nodes, n)
	return n.ID
}

func (d *Document) Root() NodeID {
	return d.root
}

// Node returns the node addressed by id, or nil.
func (d *Document) Node(id NodeID) *Node {
	if id <= Nil || int(id) >= len(d.nodes) {
		return nil
	}
	return d.nodes[id]
}

func (d *Document) Kind(id NodeID) Kind {
	if n := d.Node(id); n != nil {
		return n.Kind
	}
	return Root
}

func (d *Document) Parent(id NodeID) NodeID {
	if n := d.Node(id); n != nil {
		return n.Parent
	}
	return Nil
}

// Children returns the children of id. The slice must not be modified.
func (d *Document) Children(id NodeID) []NodeID {
	if n := d.Node(id); n != nil {
		return n.Children
	}
	return nil
}

func (d *Document) FirstChild(id NodeID) NodeID {
	if c := d.Children(id); len(c) > 0 {
		return c[0]
	}
	return Nil
}

func (d *Document) LastChild(id NodeID) NodeID {
	if c := d.Children(id); len(c) > 0 {
		return c[len(c)-1]
	}
	return Nil
}

// Index returns the position of id among its siblings, or -1.
func (d *Document) Index(id NodeID) int {
	for i, c := range d.Children(d.Parent(id)) {
		if c == id {
			return i
		}
	}
	return -1
}

func (d *Document) PrevSibling(id NodeID) NodeID {
	if i := d.Index(id); i > 0 {
		return d.Children(d.Parent(id))[i-1]
	}
	return Nil
}

func (d *Document) NextSibling(id NodeID) NodeID {
	sib := d.Children(d.Parent(id))
	if i := d.Index(id); i >= 0 && i+1 < len(sib) {
		return sib[i+1]
	}
	return Nil
}

// Contains reports whether id is anc or one of its descendants.
func (d *Document) Contains(anc, id NodeID) bool {
	for ; id != Nil; id = d.Parent(id) {
		if id == anc {
			return true
		}
	}
	return false
}

// Attached reports whether id is reachable from the root.
func (d *Document) Attached(id NodeID) bool {
	return d.Node(id) != nil && d.Contains(d.root, id)
}

// CreateBlock returns a detached block. An empty text gives the block a placeholder.
func (d *Document) CreateBlock(tag Tag, text string) NodeID {
	id := d.add(&Node{Kind: Block, Tag: tag})
	d.fill(id, text)
	return id
}

// CreateList returns a detached, empty list container of the given tag (OL or UL).
func (d *Document) CreateList(tag Tag) NodeID {
	return d.add(&Node{Kind: List, Tag: tag})
}

// CreateInline returns a detached inline node. Spans and anchors receive the
// text as a child, or a placeholder when it is empty; Text ignores names.
func (d *Document) CreateInline(kind Kind, text string, names style.Names) NodeID {
	switch kind {
	case Text:
		return d.CreateText(text)
	case Placeholder:
		return d.CreatePlaceholder()
	}
	id := d.add(&Node{Kind: kind})
	d.SetStyles(id, names)
	d.fill(id, text)
	return id
}

// CreateAnchor returns a detached anchor showing title.
func (d *Document) CreateAnchor(title, href string, newTab bool, names style.Names) NodeID {
	id := d.CreateInline(Anchor, title, names)
	n := d.Node(id)
	n.Href = href
	n.NewTab = newTab
	return id
}

func (d *Document) CreateText(text string) NodeID {
	return d.add(&Node{Kind: Text, Text: text})
}

func (d *Document) CreatePlaceholder() NodeID {
	return d.add(&Node{Kind: Placeholder})
}

func (d *Document) fill(id NodeID, text string) {
	if text == "" {
		d.AppendChild(id, d.CreatePlaceholder())
	} else {
		d.AppendChild(id, d.CreateText(text))
	}
}

// Clone returns a detached copy of id without its children.
func (d *Document) Clone(id NodeID) NodeID {
	n := d.Node(id)
	c := *n
	c.Parent = Nil
	c.Children = nil
	c.Names = append(style.Names(nil), n.Names...)
	return d.add(&c)
}

// SetStyles replaces the style names of id and derives its CSS text from them.
func (d *Document) SetStyles(id NodeID, names style.Names) {
	n := d.Node(id)
	n.Names = append(style.Names(nil), names...)
	n.CSS = n.Names.CSS()
}

// IsBlock reports whether id is a p, heading or li block.
func (d *Document) IsBlock(id NodeID) bool {
	n := d.Node(id)
	return n != nil && n.Kind == Block
}

// NearestBlock walks upward from id, id included, and returns the first
// block. It returns Nil when stopAt or the root is reached first.
func (d *Document) NearestBlock(id, stopAt NodeID) NodeID {
	for ; id != Nil && id != stopAt; id = d.Parent(id) {
		if d.Kind(id) == Block {
			return id
		}
	}
	return Nil
}

// NearestAnchor walks upward from id, id included, and returns the first
// anchor met before a block.
func (d *Document) NearestAnchor(id NodeID) NodeID {
	for ; id != Nil; id = d.Parent(id) {
		switch d.Kind(id) {
		case Anchor:
			return id
		case Block, List, Root:
			return Nil
		}
	}
	return Nil
}

// HasOnlyPlaceholder reports whether id is a placeholder, or an element whose
// leaves are all placeholders.
func (d *Document) HasOnlyPlaceholder(id NodeID) bool {
	n := d.Node(id)
	if n == nil {
		return false
	}
	switch n.Kind {
	case Placeholder:
		return true
	case Text:
		return false
	}
	if len(n.Children) == 0 {
		return false
	}
	for _, c := range n.Children {
		if !d.HasOnlyPlaceholder(c) {
			return false
		}
	}
	return true
}

func (d *Document) detach(id NodeID) {
	n := d.Node(id)
	if n.Parent == Nil {
		return
	}
	p := d.Node(n.Parent)
	for i, c := range p.Children {
		if c == id {
			p.Children = append(p.Children[:i:i], p.Children[i+1:]...)
			break
		}
	}
	n.Parent = Nil
}

// InsertAt makes child the i-th child of parent.
func (d *Document) InsertAt(parent NodeID, i int, child NodeID) {
	d.detach(child)
	p := d.Node(parent)
	if i < 0 || i > len(p.Children) {
		i = len(p.Children)
	}
	p.Children = append(p.Children, Nil)
	copy(p.Children[i+1:], p.Children[i:])
	p.Children[i] = child
	d.Node(child).Parent = parent
}

func (d *Document) AppendChild(parent, child NodeID) {
	d.InsertAt(parent, -1, child)
}

// InsertBefore inserts child into parent before ref. A Nil ref appends.
func (d *Document) InsertBefore(parent, child, ref NodeID) {
	d.detach(child)
	i := -1
	if ref != Nil {
		i = d.Index(ref)
	}
	d.InsertAt(parent, i, child)
}

// InsertAfter inserts child right after ref, under ref's parent.
func (d *Document) InsertAfter(ref, child NodeID) {
	d.detach(child)
	d.InsertAt(d.Parent(ref), d.Index(ref)+1, child)
}

// Remove detaches id from the tree. The node and its subtree stay addressable.
func (d *Document) Remove(id NodeID) {
	d.detach(id)
}

// Replace puts repl where old was and detaches old.
func (d *Document) Replace(old, repl NodeID) {
	parent, i := d.Parent(old), d.Index(old)
	d.detach(old)
	d.InsertAt(parent, i, repl)
}

// MoveChildren appends every child of src to dst, in order.
func (d *Document) MoveChildren(src, dst NodeID) {
	for _, c := range append([]NodeID(nil), d.Children(src)...) {
		d.AppendChild(dst, c)
	}
}

// MoveFollowingSiblings appends every sibling after from to dst, in order.
func (d *Document) MoveFollowingSiblings(from, dst NodeID) {
	sib := d.Children(d.Parent(from))
	i := d.Index(from)
	for _, c := range append([]NodeID(nil), sib[i+1:]...) {
		d.AppendChild(dst, c)
	}
}

// EnsureNotEmpty gives an empty element a placeholder child.
func (d *Document) EnsureNotEmpty(id NodeID) {
	if len(d.Children(id)) == 0 {
		d.AppendChild(id, d.CreatePlaceholder())
	}
}

// Blocks returns every block of the document in order.
func (d *Document) Blocks() []NodeID {
	var out []NodeID
	for _, c := range d.Children(d.root) {
		switch d.Kind(c) {
		case Block:
			out = append(out, c)
		case List:
			out = append(out, d.Children(c)...)
		}
	}
	return out
}

// Tidy removes empty inline elements and text runs under id, drops bare
// placeholders that sit next to other content, and gives empty blocks a
// placeholder. Empty lists under the root are removed.
func (d *Document) Tidy(id NodeID) {
	n := d.Node(id)
	for _, c := range append([]NodeID(nil), n.Children...) {
		cn := d.Node(c)
		switch cn.Kind {
		case Span, Anchor, List:
			d.Tidy(c)
			if len(cn.Children) == 0 {
				d.Remove(c)
			}
		case Block:
			d.Tidy(c)
		case Text:
			if cn.Text == "" {
				d.Remove(c)
			}
		}
	}
	if n.Kind != Root && n.Kind != List && len(n.Children) > 1 {
		keep := Nil
		for _, c := range n.Children {
			if d.Kind(c) != Placeholder {
				keep = Nil
				break
			}
			if keep == Nil {
				keep = c
			}
		}
		for _, c := range append([]NodeID(nil), n.Children...) {
			if d.Kind(c) == Placeholder && c != keep {
				d.Remove(c)
			}
		}
	}
	switch n.Kind {
	case Block:
		d.EnsureNotEmpty(id)
	case Root:
		if len(n.Children) == 0 {
			d.AppendChild(id, d.CreateBlock(P, ""))
		}
	}
}

// IsEmpty reports whether the document shows no text.
func (d *Document) IsEmpty() bool {
	return d.TextContent(d.root) == ""
}

// SetTag changes the tag of a block or list in place.
func (d *Document) SetTag(id NodeID, tag Tag) {
	d.Node(id).Tag = tag
}

// Rebuild returns a detached copy of id with the given kind and tag. The copy
// takes over the children and styles of id; link fields survive only on
// anchors.
func (d *Document) Rebuild(id NodeID, kind Kind, tag Tag) NodeID {
	nid := d.Clone(id)
	n := d.Node(nid)
	n.Kind, n.Tag = kind, tag
	if kind != Anchor {
		n.Href, n.NewTab = "", false
	}
	d.MoveChildren(id, nid)
	return nid
}
