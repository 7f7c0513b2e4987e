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

// Package toggle applies and removes named styles by restructuring the
// document tree around the caret.
//
// Every operation either completes its whole structural change or leaves the
// tree untouched. Missing cursors, stale containers, unknown style names and
// requests that make no sense at the caret are reported as a Result with
// Changed false; none of them is an error.
package toggle // import "akhil.cc/editable/toggle"

import (
	"akhil.cc/editable/ast"
	"akhil.cc/editable/cursor"
	"akhil.cc/editable/style"
	"go.uber.org/zap"
)

// Extra carries the payload some styles need.
type Extra struct {
	// Heading is the target tag of a heading toggle, p or h1-h6.
	Heading ast.Tag

	// Title, URL and NewTab describe a new link. An empty title falls back to
	// the selected text, then to the URL.
	Title  string
	URL    string
	NewTab bool

	// Emoji is the literal text inserted by an emoji request.
	Emoji string
}

// Result describes the outcome of an operation. Cursor is the caret after
// the change, or the unchanged input cursor when nothing happened. Node is the
// node created or restyled, when there is one.
type Result struct {
	Changed bool
	Cursor  cursor.State
	Node    ast.NodeID
}

// Engine performs tree surgery on one document.
type Engine struct {
	doc *ast.Document
	log *zap.Logger
}

type Option func(*Engine)

// WithLogger sets the logger used for dispatch and no-op reasons.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

func New(d *ast.Document, opts ...Option) *Engine {
	e := &Engine{doc: d, log: zap.NewNop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Document returns the document the engine mutates.
func (e *Engine) Document() *ast.Document {
	return e.doc
}

// Toggle applies style name (status true) or removes it (status false) at
// the cursor cs.
func (e *Engine) Toggle(name style.Name, status bool, cs cursor.State, x Extra) Result {
	e.log.Debug("toggle", zap.Stringer("style", name), zap.Bool("status", status))
	if !cs.Active() {
		return e.noop(cs, name, "no editing context")
	}
	if !e.doc.Attached(cs.Container) {
		return e.noop(cs, name, "stale cursor")
	}
	if e.doc.NearestBlock(cs.Container, ast.Nil) == ast.Nil {
		return e.noop(cs, name, "cursor outside a block")
	}
	switch style.Classify(name) {
	case style.Inline:
		return e.inline(name, status, cs)
	case style.Block:
		return e.block(name, status, cs)
	case style.List:
		return e.list(name, status, cs)
	case style.HeadingCategory:
		return e.heading(status, cs, x)
	case style.LinkCategory:
		return e.link(name, status, cs, x)
	case style.EmojiCategory:
		return e.emoji(cs, x)
	}
	return e.noop(cs, name, "unknown style")
}

func (e *Engine) noop(cs cursor.State, name style.Name, reason string) Result {
	e.log.Debug("no change", zap.Stringer("style", name), zap.String("reason", reason))
	return Result{Cursor: cs}
}

func changed(node ast.NodeID, cs cursor.State) Result {
	return Result{Changed: true, Cursor: cs, Node: node}
}

// keep returns the cursor at the range of cs when its points survived the
// mutation, or places it at the end of fallback.
func (e *Engine) keep(cs cursor.State, fallback ast.NodeID) cursor.State {
	r := *cs.Range
	if e.doc.Attached(r.Start.Node) && e.doc.Attached(r.End.Node) {
		return cursor.At(e.doc, r, cs.Selection)
	}
	return cursor.Reposition(e.doc, cs.Selection, fallback, cursor.InsideAtEnd)
}

// caret collapses the live selection at p.
func (e *Engine) caret(sel cursor.Selection, p cursor.Point) cursor.State {
	r := cursor.Caret(p)
	if sel != nil {
		sel.RemoveAllRanges()
		sel.AddRange(r)
	}
	return cursor.At(e.doc, r, sel)
}

// extent returns the text offsets of r relative to block. An end outside the
// block is clamped to the end of the block.
func (e *Engine) extent(block ast.NodeID, r cursor.Range) (int, int) {
	s, _ := cursor.Offset(e.doc, block, r.Start)
	end, ok := cursor.Offset(e.doc, block, r.End)
	if !ok {
		end = e.doc.Len(block)
	}
	if end < s {
		s, end = end, s
	}
	return s, end
}

// cut splits the child of parent straddling text offset off and returns the
// child index where the content at off now begins.
func (e *Engine) cut(parent ast.NodeID, off int) int {
	d := e.doc
	pos := 0
	for i, c := range d.Children(parent) {
		l := d.Len(c)
		if off <= pos {
			return i
		}
		if off < pos+l {
			if tail := d.SplitAt(c, off-pos); tail != ast.Nil {
				d.InsertAfter(c, tail)
			}
			return i + 1
		}
		pos += l
	}
	return len(d.Children(parent))
}

// extract deletes the selected text of r inside block and returns it with
// the parent and offset a replacement belongs at. The parent is the anchor
// boundary when it survives the deletion, otherwise the block.
func (e *Engine) extract(block, boundary ast.NodeID, r cursor.Range) (string, ast.NodeID, int) {
	d := e.doc
	s, end := e.extent(block, r)
	base, _ := d.TextOffset(block, boundary, 0)
	text := d.DeleteText(block, s, end)
	if boundary == block || !d.Attached(boundary) {
		return text, block, s
	}
	return text, boundary, s - base
}
