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

package toggle

import (
	"unicode/utf8"

	"akhil.cc/editable/ast"
	"akhil.cc/editable/cursor"
	"akhil.cc/editable/style"
	"go.uber.org/zap"
)

// NewLine splits the block at the caret. The content after the caret moves
// into a new block right after it: an li inside a list, a p otherwise.
// Justify styles stay behind. When the new block is empty and inline names
// are given, it starts with a styled placeholder span holding the caret.
func (e *Engine) NewLine(cs cursor.State, inline style.Names) Result {
	d := e.doc
	e.log.Debug("new line", zap.Stringer("inline", inline))
	if !cs.Active() || !d.Attached(cs.Container) {
		return e.noop(cs, style.Invalid, "no editing context")
	}
	c, r := cs.Container, *cs.Range
	block := d.NearestBlock(c, ast.Nil)
	if block == ast.Nil {
		if c != d.Root() {
			return e.noop(cs, style.Invalid, "cursor outside a block")
		}
		p := d.CreateBlock(ast.P, "")
		d.AppendChild(c, p)
		return changed(p, cursor.Reposition(d, cs.Selection, p, cursor.InsideAtEnd))
	}

	s, end := e.extent(block, r)
	if s != end {
		d.DeleteText(block, s, end)
	}
	tag := ast.P
	if d.Node(block).Tag == ast.LI {
		tag = ast.LI
	}
	nb := d.SplitAt(block, s)
	if nb == ast.Nil {
		nb = d.CreateBlock(tag, "")
		if ns := inline.Filter(style.Inline); len(ns) > 0 {
			d.Replace(d.FirstChild(nb), d.CreateInline(ast.Span, "", ns))
		}
	}
	d.SetTag(nb, tag)
	d.SetStyles(nb, nil)
	d.InsertAfter(block, nb)
	d.Tidy(block)
	d.Tidy(nb)

	n, o := d.LocateAfter(nb, 0)
	return changed(nb, e.caret(cs.Selection, cursor.Point{Node: n, Offset: o}))
}

// InsertText types text at the caret. A non-collapsed selection is deleted
// first; a placeholder under the caret is replaced by the text.
func (e *Engine) InsertText(cs cursor.State, text string) Result {
	d := e.doc
	if !cs.Active() || !d.Attached(cs.Container) {
		return e.noop(cs, style.Invalid, "no editing context")
	}
	if text == "" {
		return e.noop(cs, style.Invalid, "nothing to insert")
	}
	block := d.NearestBlock(cs.Container, ast.Nil)
	if block == ast.Nil {
		return e.noop(cs, style.Invalid, "cursor outside a block")
	}
	p := cs.Range.Start
	if !cs.Range.Collapsed() {
		s, end := e.extent(block, *cs.Range)
		d.DeleteText(block, s, end)
		p.Node, p.Offset = d.Locate(block, s)
	}

	var t ast.NodeID
	off := utf8.RuneCountInString(text)
	switch n := d.Node(p.Node); n.Kind {
	case ast.Text:
		t = p.Node
		off = d.InsertText(t, p.Offset, text)
	case ast.Placeholder:
		t = d.CreateText(text)
		d.Replace(p.Node, t)
	default:
		kids := n.Children
		i := min(max(p.Offset, 0), len(kids))
		switch {
		case i > 0 && d.Kind(kids[i-1]) == ast.Text:
			t = kids[i-1]
			off = d.InsertText(t, d.Len(t), text)
		case i < len(kids) && d.Kind(kids[i]) == ast.Placeholder:
			t = d.CreateText(text)
			d.Replace(kids[i], t)
		default:
			t = d.CreateText(text)
			d.InsertAt(p.Node, i, t)
		}
	}
	d.Tidy(block)
	return changed(t, e.caret(cs.Selection, cursor.Point{Node: t, Offset: off}))
}
