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

package style

import "strings"

// Separator joins names in the style-name attribute.
const Separator = ","

// Names is an ordered set of style names. Order is application order and is
// significant for the persisted attribute and for the CSS text.
type Names []Name

// ParseNames reads a style-name attribute. Unknown and duplicate names are dropped.
func ParseNames(attr string) Names {
	if attr == "" {
		return nil
	}
	var ns Names
	for _, s := range strings.Split(attr, Separator) {
		if n, ok := Parse(strings.TrimSpace(s)); ok && !ns.Has(n) {
			ns = append(ns, n)
		}
	}
	return ns
}

// String returns the comma-joined attribute form.
func (ns Names) String() string {
	var b strings.Builder
	for i, n := range ns {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(n.String())
	}
	return b.String()
}

// CSS returns the CSS text for ns, the concatenation of each name's CSS in order.
func (ns Names) CSS() string {
	var b strings.Builder
	for _, n := range ns {
		b.WriteString(Render(n).CSS)
	}
	return b.String()
}

func (ns Names) Has(n Name) bool {
	for _, m := range ns {
		if m == n {
			return true
		}
	}
	return false
}

// With returns ns with n appended when missing. The receiver is not
// modified.
func (ns Names) With(n Name) Names {
	out := append(Names(nil), ns...)
	if !out.Has(n) {
		out = append(out, n)
	}
	return out
}

// Without returns ns with n removed. The receiver is not modified.
func (ns Names) Without(n Name) Names {
	var out Names
	for _, m := range ns {
		if m != n {
			out = append(out, m)
		}
	}
	return out
}

// Merge appends the names of other missing from ns.
func (ns Names) Merge(other Names) Names {
	out := append(Names(nil), ns...)
	for _, n := range other {
		if !out.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// Filter keeps the names of the given category.
func (ns Names) Filter(c Category) Names {
	var out Names
	for _, n := range ns {
		if Classify(n) == c {
			out = append(out, n)
		}
	}
	return out
}

// Equal reports whether ns and other hold the same names, ignoring order.
func (ns Names) Equal(other Names) bool {
	if len(ns) != len(other) {
		return false
	}
	for _, n := range ns {
		if !other.Has(n) {
			return false
		}
	}
	return true
}
