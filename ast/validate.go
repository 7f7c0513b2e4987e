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

package ast

import (
	"fmt"

	"akhil.cc/editable/style"
	"go.uber.org/multierr"
)

// Validate checks the structural invariants of the document and returns every
// violation found, combined with multierr.
func (d *Document) Validate() error {
	var err error
	root := d.Node(d.root)
	if len(root.Children) == 0 {
		err = multierr.Append(err, fmt.Errorf("document has no blocks"))
	}
	Walk(d, d.root, func(n *Node) error {
		err = multierr.Append(err, d.check(n))
		return nil
	})
	return err
}

func (d *Document) check(n *Node) error {
	var err error
	for _, c := range n.Children {
		if d.Parent(c) != n.ID {
			err = multierr.Append(err, fmt.Errorf("node %d: child %d has parent %d", n.ID, c, d.Parent(c)))
		}
	}
	parent := d.Node(n.Parent)
	switch n.Kind {
	case Root:
		for _, c := range n.Children {
			if k := d.Kind(c); k != Block && k != List {
				err = multierr.Append(err, fmt.Errorf("node %d: %s directly under the root", c, k))
			}
		}
	case List:
		if n.Tag != OL && n.Tag != UL {
			err = multierr.Append(err, fmt.Errorf("node %d: list with tag %q", n.ID, n.Tag))
		}
		if len(n.Children) == 0 {
			err = multierr.Append(err, fmt.Errorf("node %d: empty %s", n.ID, n.Tag))
		}
		for _, c := range n.Children {
			if d.Kind(c) != Block || d.Node(c).Tag != LI {
				err = multierr.Append(err, fmt.Errorf("node %d: %s holds node %d which is not li", n.ID, n.Tag, c))
			}
		}
	case Block:
		switch {
		case n.Tag == LI && (parent == nil || parent.Kind != List):
			err = multierr.Append(err, fmt.Errorf("node %d: li outside a list", n.ID))
		case n.Tag != LI && !(n.Tag == P || n.Tag.Heading()):
			err = multierr.Append(err, fmt.Errorf("node %d: block with tag %q", n.ID, n.Tag))
		case n.Tag != LI && parent != nil && parent.Kind != Root:
			err = multierr.Append(err, fmt.Errorf("node %d: %s nested in %s", n.ID, n.Tag, parent.Kind))
		}
		if len(n.Children) == 0 {
			err = multierr.Append(err, fmt.Errorf("node %d: %s has no children", n.ID, n.Tag))
		}
		err = multierr.Append(err, d.checkInline(n))
		err = multierr.Append(err, checkStyles(n, style.Block))
	case Span, Anchor:
		if len(n.Children) == 0 {
			err = multierr.Append(err, fmt.Errorf("node %d: empty %s", n.ID, n.Kind))
		}
		err = multierr.Append(err, d.checkInline(n))
		err = multierr.Append(err, checkStyles(n, style.Inline))
	}
	return err
}

func (d *Document) checkInline(n *Node) error {
	var err error
	for _, c := range n.Children {
		if !d.Kind(c).Inline() {
			err = multierr.Append(err, fmt.Errorf("node %d: %s inside %s", c, d.Kind(c), n.Kind))
		}
	}
	return err
}

func checkStyles(n *Node, want style.Category) error {
	var err error
	for _, s := range n.Names {
		if style.Classify(s) != want {
			err = multierr.Append(err, fmt.Errorf("node %d: %s style %q on %s", n.ID, style.Classify(s), s, n.Kind))
		}
	}
	if n.CSS != n.Names.CSS() || !style.InSync(n.Names, n.CSS) {
		err = multierr.Append(err, fmt.Errorf("node %d: css %q out of sync with %q", n.ID, n.CSS, n.Names))
	}
	return err
}
