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

// Package introspect answers which styles are live at a cursor container.
//
// ActiveStylesAt walks to the enclosing block and reports every style in
// effect there, including the link, heading and list context. EffectiveStyle
// is the narrower inherited inline style the toggle engine merges into.
package introspect // import "akhil.cc/editable/introspect"

import (
	"akhil.cc/editable/ast"
	"akhil.cc/editable/style"
)

// Active is the result of ActiveStylesAt. Heading is ast.NoTag unless the
// enclosing block is h1-h6.
type Active struct {
	Names   style.Names
	Heading ast.Tag
}

// ActiveStylesAt collects the style names of c and its ancestors up to the
// nearest block. Crossing an anchor adds link; a list item adds orderedList
// or unorderedList after the kind of its list.
func ActiveStylesAt(d *ast.Document, c ast.NodeID) Active {
	var a Active
	for id := c; id != ast.Nil; id = d.Parent(id) {
		n := d.Node(id)
		switch n.Kind {
		case ast.Span:
			a.Names = a.Names.Merge(n.Names)
		case ast.Anchor:
			a.Names = a.Names.Merge(n.Names).With(style.Link)
		case ast.Block:
			a.Names = a.Names.Merge(n.Names)
			if n.Tag.Heading() {
				a.Heading = n.Tag
			}
			if n.Tag == ast.LI {
				switch d.Node(n.Parent).Tag {
				case ast.OL:
					a.Names = a.Names.With(style.OrderedList)
				case ast.UL:
					a.Names = a.Names.With(style.UnorderedList)
				}
			}
			return a
		case ast.List, ast.Root:
			return a
		}
	}
	return a
}

// Effective is the inherited inline style at a container.
type Effective struct {
	Names style.Names
	CSS   string
	// Boundary is the block or anchor where the walk stopped.
	Boundary ast.NodeID
	// Depth counts the spans walked through, the container included.
	Depth int
}

// EffectiveStyle walks from c up to the nearest block or anchor, neither
// included, accumulating the style names of the spans it crosses.
func EffectiveStyle(d *ast.Document, c ast.NodeID) Effective {
	var e Effective
	for id := c; id != ast.Nil; id = d.Parent(id) {
		n := d.Node(id)
		switch n.Kind {
		case ast.Span:
			e.Names = e.Names.Merge(n.Names)
			e.Depth++
		case ast.Block, ast.Anchor, ast.List, ast.Root:
			e.Boundary = id
			e.CSS = e.Names.CSS()
			return e
		}
	}
	e.CSS = e.Names.CSS()
	return e
}
