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

package cursor

// Selection is the host's live selection: the ranges the user currently has,
// in the order they were added.
type Selection interface {
	RangeCount() int
	RangeAt(i int) Range
	AddRange(r Range)
	RemoveAllRanges()
}

// Live is an in-memory Selection, for hosts without a rendering surface.
type Live struct {
	ranges []Range
}

// NewLive returns a selection holding r.
func NewLive(r Range) *Live {
	return &Live{ranges: []Range{r}}
}

func (l *Live) RangeCount() int {
	return len(l.ranges)
}

func (l *Live) RangeAt(i int) Range {
	return l.ranges[i]
}

func (l *Live) AddRange(r Range) {
	l.ranges = append(l.ranges, r)
}

func (l *Live) RemoveAllRanges() {
	l.ranges = l.ranges[:0]
}

// Set replaces every range with r.
func (l *Live) Set(r Range) {
	l.RemoveAllRanges()
	l.AddRange(r)
}
