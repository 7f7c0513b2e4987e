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
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Len returns the number of runes of visible text under id. Placeholders
// count zero.
func (d *Document) Len(id NodeID) int {
	n := d.Node(id)
	if n == nil {
		return 0
	}
	if n.Kind == Text {
		return utf8.RuneCountInString(n.Text)
	}
	l := 0
	for _, c := range n.Children {
		l += d.Len(c)
	}
	return l
}

// TextContent returns the visible text under id.
func (d *Document) TextContent(id NodeID) string {
	var b strings.Builder
	Walk(d, id, func(n *Node) error {
		if n.Kind == Text {
			b.WriteString(n.Text)
		}
		return nil
	})
	return b.String()
}

// Leaves returns the text and placeholder leaves under id, in document order.
func (d *Document) Leaves(id NodeID) []NodeID {
	var out []NodeID
	Walk(d, id, func(n *Node) error {
		if n.Kind.Leaf() {
			out = append(out, n.ID)
		}
		return nil
	})
	return out
}

// TextOffset converts a point inside within to a text offset relative to the
// start of within. A point on a Text leaf counts runes; a point on an element
// counts children. It reports false when node is not inside within.
func (d *Document) TextOffset(within, node NodeID, offset int) (int, bool) {
	if d.Node(node) == nil || !d.Contains(within, node) {
		return 0, false
	}
	pos := 0
	for id := node; id != within; {
		p := d.Parent(id)
		for _, c := range d.Children(p) {
			if c == id {
				break
			}
			pos += d.Len(c)
		}
		id = p
	}
	n := d.Node(node)
	switch n.Kind {
	case Text:
		return pos + clamp(offset, 0, utf8.RuneCountInString(n.Text)), true
	case Placeholder:
		return pos, true
	}
	for i, c := range n.Children {
		if i >= offset {
			break
		}
		pos += d.Len(c)
	}
	return pos, true
}

// Locate converts a text offset relative to within into a leaf and an offset
// in that leaf. An offset on the boundary between two leaves resolves to the
// end of the first one. Without leaves, the point is within itself.
func (d *Document) Locate(within NodeID, off int) (NodeID, int) {
	pos := 0
	last := Nil
	for _, l := range d.Leaves(within) {
		n := d.Len(l)
		if off <= pos+n {
			return l, clamp(off-pos, 0, n)
		}
		pos += n
		last = l
	}
	if last != Nil {
		return last, d.Len(last)
	}
	return within, 0
}

// SplitAt cuts id at a text offset. Content after the offset moves into a
// detached copy of id, which is returned; Nil means nothing followed the
// offset. Empty elements exactly at the offset stay with id. Text offsets are
// snapped down to a grapheme cluster boundary.
func (d *Document) SplitAt(id NodeID, off int) NodeID {
	n := d.Node(id)
	switch n.Kind {
	case Placeholder:
		return Nil
	case Text:
		off = snap(n.Text, off)
		r := []rune(n.Text)
		if off >= len(r) {
			return Nil
		}
		tail := d.CreateText(string(r[off:]))
		n.Text = string(r[:off])
		return tail
	}
	clone := d.Clone(id)
	pos := 0
	for _, c := range append([]NodeID(nil), n.Children...) {
		l := d.Len(c)
		switch {
		case pos > off, pos == off && l > 0:
			d.AppendChild(clone, c)
		case pos < off && off < pos+l:
			if t := d.SplitAt(c, off-pos); t != Nil {
				d.AppendChild(clone, t)
			}
		}
		pos += l
	}
	if len(d.Children(clone)) == 0 {
		return Nil
	}
	return clone
}

// DeleteText removes the text between two offsets of within and returns it.
// Emptied inline elements are pruned and within is tidied.
func (d *Document) DeleteText(within NodeID, start, end int) string {
	if start > end {
		start, end = end, start
	}
	var b strings.Builder
	pos := 0
	for _, l := range d.Leaves(within) {
		n := d.Node(l)
		if n.Kind != Text {
			continue
		}
		r := []rune(n.Text)
		ls, le := pos, pos+len(r)
		pos = le
		s, e := max(start, ls), min(end, le)
		if s >= e {
			continue
		}
		b.WriteString(string(r[s-ls : e-ls]))
		n.Text = string(r[:s-ls]) + string(r[e-ls:])
	}
	d.Tidy(within)
	return b.String()
}

// InsertText inserts s into the Text leaf id at a rune offset, snapped to a
// grapheme cluster boundary, and returns the offset right after the insertion.
func (d *Document) InsertText(id NodeID, off int, s string) int {
	n := d.Node(id)
	off = snap(n.Text, off)
	r := []rune(n.Text)
	n.Text = string(r[:off]) + s + string(r[off:])
	return off + utf8.RuneCountInString(s)
}

// snap returns the largest grapheme cluster boundary of s not after off runes.
func snap(s string, off int) int {
	if off <= 0 {
		return 0
	}
	pos, state := 0, -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		n := utf8.RuneCountInString(cluster)
		if pos+n > off {
			break
		}
		pos += n
	}
	return pos
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// LocateAfter is Locate with the opposite affinity: an offset on the boundary
// between two leaves resolves to the start of the second one.
func (d *Document) LocateAfter(within NodeID, off int) (NodeID, int) {
	pos := 0
	for _, l := range d.Leaves(within) {
		n := d.Len(l)
		if off < pos+n {
			return l, max(off-pos, 0)
		}
		pos += n
	}
	return d.Locate(within, off)
}
