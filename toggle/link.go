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

// link unwraps the anchor around the caret, or inserts a new anchor in place
// of the selected text. Without a selection the anchor goes at the end of the
// block when the caret sits directly in it, and at the caret inside a span.
func (e *Engine) link(name style.Name, status bool, cs cursor.State, x Extra) Result {
	d := e.doc
	c, r := cs.Container, *cs.Range
	if a := d.NearestAnchor(c); a != ast.Nil {
		e.log.Debug("unlink", zap.String("href", d.Node(a).Href))
		span := d.Rebuild(a, ast.Span, ast.NoTag)
		d.Replace(a, span)
		return changed(span, e.keep(cs, span))
	}
	if name == style.Unlink || !status {
		return e.noop(cs, name, "not inside a link")
	}
	if x.URL == "" {
		return e.noop(cs, name, "missing url")
	}

	block := d.NearestBlock(c, ast.Nil)
	eff := introspect.EffectiveStyle(d, c)
	title := x.Title
	parent := block
	off, _ := cursor.Offset(d, block, r.Start)
	if c == block {
		// A caret directly in the block appends the link to it.
		off = d.Len(block)
	}
	if !r.Collapsed() {
		var text string
		text, parent, off = e.extract(block, block, r)
		if title == "" {
			title = text
		}
	}
	if title == "" {
		title = x.URL
	}
	a := d.CreateAnchor(title, x.URL, x.NewTab, eff.Names)
	d.InsertAt(parent, e.cut(parent, off), a)
	d.Tidy(block)
	return changed(a, cursor.Reposition(d, cs.Selection, a, cursor.After))
}
