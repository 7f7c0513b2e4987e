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
	"akhil.cc/editable/style"
	"go.uber.org/zap"
)

func listTag(name style.Name) ast.Tag {
	if name == style.OrderedList {
		return ast.OL
	}
	return ast.UL
}

// list moves the nearest block into or out of a list of the kind named.
func (e *Engine) list(name style.Name, status bool, cs cursor.State) Result {
	d := e.doc
	kind := listTag(name)
	b := d.NearestBlock(cs.Container, ast.Nil)
	parent := d.Parent(b)
	inList := d.Node(b).Tag == ast.LI && d.Kind(parent) == ast.List

	switch {
	case inList && d.Node(parent).Tag == kind:
		if status {
			return e.noop(cs, name, "already in the list")
		}
		p := e.pullOut(b, ast.P)
		return changed(p, e.keep(cs, p))

	case inList:
		if !status {
			return e.noop(cs, name, "not in a list of that kind")
		}
		// Switching kinds replaces the wrapper and keeps every item.
		l := d.CreateList(kind)
		d.MoveChildren(parent, l)
		d.Replace(parent, l)
		return changed(l, e.keep(cs, b))

	case !status:
		return e.noop(cs, name, "not in a list")
	}

	li := d.Rebuild(b, ast.Block, ast.LI)
	e.place(b, li, kind)
	return changed(li, e.keep(cs, li))
}

// place puts li where block sits. It joins a list of the same kind right
// before or right after block, merging both when block sat between two of
// them, and opens a new list otherwise. Only immediate siblings are
// considered.
func (e *Engine) place(block, li ast.NodeID, kind ast.Tag) {
	d := e.doc
	same := func(id ast.NodeID) bool {
		return d.Kind(id) == ast.List && d.Node(id).Tag == kind
	}
	prev, next := d.PrevSibling(block), d.NextSibling(block)
	switch {
	case same(prev) && same(next):
		d.AppendChild(prev, li)
		d.MoveChildren(next, prev)
		d.Remove(next)
		d.Remove(block)
	case same(prev):
		d.AppendChild(prev, li)
		d.Remove(block)
	case same(next):
		d.InsertAt(next, 0, li)
		d.Remove(block)
	default:
		l := d.CreateList(kind)
		d.Replace(block, l)
		d.AppendChild(l, li)
	}
}

// pullOut takes the list item li out of its list and puts a block with the
// given tag where it sat, splitting the list around it. Lists left with fewer
// than two items are dissolved.
func (e *Engine) pullOut(li ast.NodeID, tag ast.Tag) ast.NodeID {
	d := e.doc
	l := d.Parent(li)
	items := d.Children(l)
	n, i := len(items), d.Index(li)
	nb := d.Rebuild(li, ast.Block, tag)

	var rest ast.NodeID
	switch {
	case n == 1:
		d.Replace(l, nb)
	case i == 0:
		d.InsertBefore(d.Parent(l), nb, l)
		d.Remove(li)
	case i == n-1:
		d.InsertAfter(l, nb)
		d.Remove(li)
	default:
		rest = d.CreateList(d.Node(l).Tag)
		d.MoveFollowingSiblings(li, rest)
		d.Remove(li)
		d.InsertAfter(l, nb)
		d.InsertAfter(nb, rest)
	}
	for _, r := range []ast.NodeID{l, rest} {
		if r != ast.Nil && d.Attached(r) {
			e.dissolve(r)
		}
	}
	e.log.Debug("pulled out of list", zap.Int("items", n), zap.Int("index", i))
	return nb
}

// dissolve removes an empty list and turns a single-item list into a
// paragraph.
func (e *Engine) dissolve(l ast.NodeID) {
	d := e.doc
	switch items := d.Children(l); len(items) {
	case 0:
		d.Remove(l)
	case 1:
		p := d.Rebuild(items[0], ast.Block, ast.P)
		d.Replace(l, p)
	}
}
