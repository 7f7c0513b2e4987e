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
	"akhil.cc/editable/ast"
	"akhil.cc/editable/cursor"
	"akhil.cc/editable/introspect"
	"akhil.cc/editable/style"
	"go.uber.org/zap"
)

// inline toggles bold, italic or underline. New styled spans sit directly
// under the block or anchor that bounds the inherited style and carry the
// whole toggled set, so spans never nest below that boundary.
func (e *Engine) inline(name style.Name, status bool, cs cursor.State) Result {
	d := e.doc
	c, r := cs.Container, *cs.Range
	eff := introspect.EffectiveStyle(d, c)
	block := d.NearestBlock(c, ast.Nil)
	if r.Collapsed() && !(eff.Depth == 1 && d.HasOnlyPlaceholder(c)) {
		// A caret recaptured beside an empty styled span means that span.
		off, _ := cursor.Offset(d, eff.Boundary, r.Start)
		if sp := e.pending(eff.Boundary, off); sp != ast.Nil {
			c = sp
			eff = introspect.EffectiveStyle(d, c)
		}
	}
	names := eff.Names.Without(name)
	if status {
		names = eff.Names.With(name)
	}

	if !r.Collapsed() {
		s, end := e.extent(block, r)
		if s == end {
			return e.noop(cs, name, "empty selection")
		}
		if e.settled(block, s, end, name, status) {
			return e.noop(cs, name, "style already in effect")
		}
		tail := d.SplitAt(block, end)
		mid := d.SplitAt(block, s)
		nodes := e.restyle(append([]ast.NodeID(nil), d.Children(mid)...), nil, name, status, true)
		for _, id := range nodes {
			d.AppendChild(block, id)
		}
		if tail != ast.Nil {
			d.MoveChildren(tail, block)
		}
		d.Tidy(block)
		last := nodes[len(nodes)-1]
		e.log.Debug("styled selection", zap.Int("runs", len(nodes)), zap.Int("runes", end-s))
		return changed(last, cursor.Reposition(d, cs.Selection, last, cursor.InsideAtEnd))
	}

	if names.Equal(eff.Names) {
		return e.noop(cs, name, "style already in effect")
	}

	// An empty insertion point is restyled in place.
	if eff.Depth == 1 && d.HasOnlyPlaceholder(c) {
		if len(names) > 0 {
			d.SetStyles(c, names)
			return changed(c, cursor.Reposition(d, cs.Selection, c, cursor.InsideAtEnd))
		}
		parent, i := d.Parent(c), d.Index(c)
		d.Remove(c)
		if len(d.Children(parent)) == 0 {
			d.EnsureNotEmpty(parent)
			return changed(parent, cursor.Reposition(d, cs.Selection, parent, cursor.InsideAtEnd))
		}
		return changed(parent, e.caret(cs.Selection, cursor.Point{Node: parent, Offset: i}))
	}

	off, _ := cursor.Offset(d, eff.Boundary, r.Start)
	i := e.cut(eff.Boundary, off)
	if len(names) == 0 {
		// Leaving every style: the caret moves out of the spans, between
		// the two halves of the run it was in.
		return changed(eff.Boundary, e.caret(cs.Selection, cursor.Point{Node: eff.Boundary, Offset: i}))
	}
	id := d.CreateInline(ast.Span, "", names)
	d.InsertAt(eff.Boundary, i, id)
	d.Tidy(block)
	return changed(id, cursor.Reposition(d, cs.Selection, id, cursor.InsideAtEnd))
}

// pending returns the empty styled span of parent at text offset off, or Nil.
func (e *Engine) pending(parent ast.NodeID, off int) ast.NodeID {
	d := e.doc
	pos := 0
	for _, c := range d.Children(parent) {
		l := d.Len(c)
		if pos == off && l == 0 && d.Kind(c) == ast.Span && d.HasOnlyPlaceholder(c) {
			return c
		}
		if pos += l; pos > off {
			break
		}
	}
	return ast.Nil
}

// settled reports whether every text run between offsets s and end of block
// already has name in effect exactly when status asks for it.
func (e *Engine) settled(block ast.NodeID, s, end int, name style.Name, status bool) bool {
	d := e.doc
	pos := 0
	for _, l := range d.Leaves(block) {
		n := d.Len(l)
		if n > 0 && pos < end && s < pos+n {
			if introspect.ActiveStylesAt(d, d.Parent(l)).Names.Has(name) != status {
				return false
			}
		}
		pos += n
	}
	return true
}

// restyle rebuilds inline nodes cut out of a block so that name is applied
// to, or removed from, every text run. Nested spans are flattened into one
// span per run carrying the names accumulated on the way down. Anchors are
// kept; they take the change themselves and their content drops name.
func (e *Engine) restyle(nodes []ast.NodeID, inherited style.Names, name style.Name, status, carry bool) []ast.NodeID {
	d := e.doc
	var out []ast.NodeID
	for _, id := range nodes {
		n := d.Node(id)
		switch n.Kind {
		case ast.Text:
			ns := inherited.Without(name)
			if status && carry {
				ns = inherited.With(name)
			}
			if len(ns) == 0 {
				out = append(out, id)
				continue
			}
			span := d.CreateInline(ast.Span, "", ns)
			d.Replace(d.FirstChild(span), id)
			out = append(out, span)
		case ast.Span:
			out = append(out, e.restyle(append([]ast.NodeID(nil), n.Children...), inherited.Merge(n.Names), name, status, carry)...)
		case ast.Anchor:
			ns := n.Names.Without(name)
			if status {
				ns = n.Names.With(name)
			}
			d.SetStyles(id, ns)
			kids := append([]ast.NodeID(nil), n.Children...)
			for _, k := range kids {
				d.Remove(k)
			}
			for _, k := range e.restyle(kids, nil, name, status, false) {
				d.AppendChild(id, k)
			}
			d.EnsureNotEmpty(id)
			out = append(out, id)
		}
	}
	return out
}
