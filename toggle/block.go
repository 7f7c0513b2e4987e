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
)

// block replaces the justify style of the nearest block wholesale. Removing
// clears the block's styles.
func (e *Engine) block(name style.Name, status bool, cs cursor.State) Result {
	d := e.doc
	b := d.NearestBlock(cs.Container, ast.Nil)
	have := d.Node(b).Names
	switch {
	case status && len(have) == 1 && have[0] == name:
		return e.noop(cs, name, "style already in effect")
	case !status && !have.Has(name):
		return e.noop(cs, name, "style not in effect")
	}
	var names style.Names
	if status {
		names = style.Names{name}
	}
	d.SetStyles(b, names)
	return changed(b, e.keep(cs, b))
}

// heading swaps the tag of the nearest block between p and h1-h6. A list
// item is pulled out of its list first.
func (e *Engine) heading(status bool, cs cursor.State, x Extra) Result {
	d := e.doc
	target := ast.P
	if status {
		target = x.Heading
	}
	if target != ast.P && !target.Heading() {
		return e.noop(cs, style.Heading, "no heading level")
	}
	b := d.NearestBlock(cs.Container, ast.Nil)
	if d.Node(b).Tag == target {
		return e.noop(cs, style.Heading, "block already has the tag")
	}
	if d.Node(b).Tag == ast.LI {
		nb := e.pullOut(b, target)
		return changed(nb, e.keep(cs, nb))
	}
	d.SetTag(b, target)
	return changed(b, e.keep(cs, b))
}
