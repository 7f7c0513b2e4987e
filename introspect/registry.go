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

package introspect

import (
	"akhil.cc/editable/ast"
	"akhil.cc/editable/style"
)

// Registry holds the style names live at the cursor, partitioned by category.
// It is recomputed after every mutation and every caret move.
type Registry struct {
	Inline  style.Names
	Block   style.Names
	List    style.Names
	Heading ast.Tag
}

// Change reports one name entering or leaving the registry.
type Change struct {
	Name   style.Name
	Active bool
}

// Refresh replaces the registry contents with a and returns what changed,
// category by category, removals before additions.
func (r *Registry) Refresh(a Active) []Change {
	var changes []Change
	diff := func(have *style.Names, c style.Category) {
		next := a.Names.Filter(c)
		for _, n := range *have {
			if !next.Has(n) {
				changes = append(changes, Change{n, false})
			}
		}
		for _, n := range next {
			if !have.Has(n) {
				changes = append(changes, Change{n, true})
			}
		}
		*have = next
	}
	diff(&r.Inline, style.Inline)
	diff(&r.Block, style.Block)
	diff(&r.List, style.List)
	r.Heading = a.Heading
	return changes
}

// Has reports whether n is live in any category.
func (r *Registry) Has(n style.Name) bool {
	return r.Inline.Has(n) || r.Block.Has(n) || r.List.Has(n)
}
