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

// Package cursor models the caret and selection of an editing session.
//
// The live selection belongs to the host and is reached through the Selection
// interface. A State is a snapshot of it resolved against a document: the
// owning container element and the first range. Snapshots go stale with every
// mutation, so the editor captures a new one before each engine call.
package cursor // import "akhil.cc/editable/cursor"

import (
	"strings"
	"unicode/utf8"

	"akhil.cc/editable/ast"
)

// Point addresses a position in the tree. On a Text leaf, Offset counts runes;
// on an element, it counts children.
type Point struct {
	Node   ast.NodeID
	Offset int
}

// Range spans two points. A collapsed range is a caret.
type Range struct {
	Start, End Point
}

// Caret returns the collapsed range at p.
func Caret(p Point) Range {
	return Range{Start: p, End: p}
}

func (r Range) Collapsed() bool {
	return r.Start == r.End
}

// State is a resolved cursor snapshot. Container is ast.Nil and Range is nil
// when there is no editing context.
type State struct {
	Container ast.NodeID
	Range     *Range
	Selection Selection
}

// Active reports whether s has a container and a range.
func (s State) Active() bool {
	return s.Container != ast.Nil && s.Range != nil
}

// Capture reads the first range of sel and resolves its owning container. A
// range starting on a text or placeholder leaf belongs to the leaf's parent.
// Ranges on detached nodes resolve to an inactive state.
func Capture(d *ast.Document, sel Selection) State {
	if sel == nil || sel.RangeCount() == 0 {
		return State{Selection: sel}
	}
	return At(d, sel.RangeAt(0), sel)
}

// At resolves r against d without reading any live selection.
func At(d *ast.Document, r Range, sel Selection) State {
	c := r.Start.Node
	if d.Kind(c).Leaf() {
		c = d.Parent(c)
	}
	if !d.Attached(c) || !d.Attached(r.End.Node) {
		return State{Selection: sel}
	}
	return State{Container: c, Range: &r, Selection: sel}
}

// Position says where Place puts the caret relative to its target.
type Position int

const (
	Before Position = iota
	After
	InsideAtEnd
)

// Place returns the caret for target and where. Inside an element whose last
// child is a leaf, the caret lands at the end of that leaf.
func Place(d *ast.Document, target ast.NodeID, where Position) Range {
	switch where {
	case Before:
		return Caret(Point{d.Parent(target), d.Index(target)})
	case After:
		return Caret(Point{d.Parent(target), d.Index(target) + 1})
	}
	n := d.Node(target)
	switch {
	case n.Kind == ast.Text:
		return Caret(Point{target, utf8.RuneCountInString(n.Text)})
	case n.Kind == ast.Placeholder:
		return Caret(Point{target, 0})
	}
	if last := d.LastChild(target); last != ast.Nil && d.Kind(last).Leaf() {
		return Place(d, last, InsideAtEnd)
	}
	return Caret(Point{target, len(n.Children)})
}

// Reposition replaces the live selection with the caret given by Place and
// returns the resulting state. Without a selection the live caret is left
// alone, but the returned state still describes the new position.
func Reposition(d *ast.Document, sel Selection, target ast.NodeID, where Position) State {
	if d.Node(target) == nil {
		return State{Selection: sel}
	}
	r := Place(d, target, where)
	if sel != nil {
		sel.RemoveAllRanges()
		sel.AddRange(r)
	}
	return At(d, r, sel)
}

// Offset returns the text offset of p relative to within.
func Offset(d *ast.Document, within ast.NodeID, p Point) (int, bool) {
	return d.TextOffset(within, p.Node, p.Offset)
}

// Find returns the range of the first occurrence of text inside a single
// block. The start resolves forward, so a match beginning at a span boundary
// starts inside the span.
func Find(d *ast.Document, text string) (Range, bool) {
	if text == "" {
		return Range{}, false
	}
	for _, b := range d.Blocks() {
		content := d.TextContent(b)
		i := strings.Index(content, text)
		if i < 0 {
			continue
		}
		start := utf8.RuneCountInString(content[:i])
		end := start + utf8.RuneCountInString(text)
		sn, so := d.LocateAfter(b, start)
		en, eo := d.Locate(b, end)
		return Range{Point{sn, so}, Point{en, eo}}, true
	}
	return Range{}, false
}

// Start returns the caret at the start of the first block.
func Start(d *ast.Document) Range {
	bs := d.Blocks()
	if len(bs) == 0 {
		return Caret(Point{d.Root(), 0})
	}
	n, o := d.Locate(bs[0], 0)
	return Caret(Point{n, o})
}

// End returns the caret at the end of the last block.
func End(d *ast.Document) Range {
	bs := d.Blocks()
	if len(bs) == 0 {
		return Caret(Point{d.Root(), len(d.Children(d.Root()))})
	}
	last := bs[len(bs)-1]
	n, o := d.Locate(last, d.Len(last))
	return Caret(Point{n, o})
}
