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

// emoji appends the literal text to the cursor container and puts the caret
// right after it.
func (e *Engine) emoji(cs cursor.State, x Extra) Result {
	d := e.doc
	if x.Emoji == "" {
		return e.noop(cs, style.Emoji, "nothing to insert")
	}
	c := cs.Container
	t := d.CreateText(x.Emoji)
	d.AppendChild(c, t)
	d.Tidy(d.NearestBlock(c, ast.Nil))
	return changed(t, cursor.Reposition(d, cs.Selection, t, cursor.InsideAtEnd))
}
