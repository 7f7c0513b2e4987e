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

import (
	"testing"
)

func TestClassify(t *testing.T) {
	want := map[Name]Category{
		Bold:          Inline,
		Italic:        Inline,
		Underline:     Inline,
		JustifyLeft:   Block,
		JustifyRight:  Block,
		JustifyCenter: Block,
		JustifyFull:   Block,
		OrderedList:   List,
		UnorderedList: List,
		Heading:       HeadingCategory,
		Link:          LinkCategory,
		Unlink:        LinkCategory,
		Emoji:         EmojiCategory,
		Invalid:       None,
		Name(99):      None,
	}
	for n, c := range want {
		if got := Classify(n); got != c {
			t.Errorf("Classify(%q) = %s, want %s", n, got, c)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, n := range All() {
		got, ok := Parse(n.String())
		if !ok || got != n {
			t.Errorf("Parse(%q) = %v, %v", n.String(), got, ok)
		}
	}
	if _, ok := Parse("strikethrough"); ok {
		t.Errorf("Parse accepted an unknown name")
	}
	if _, ok := Parse(""); ok {
		t.Errorf("Parse accepted the empty name")
	}
}

type smallcase struct {
	in   string
	want string
}

var namesSmall = []smallcase{
	{"", ""},
	{"bold", "bold"},
	{"bold,italic", "bold,italic"},
	{"italic,bold", "italic,bold"},
	{"bold, underLine", "bold,underLine"},
	{"bold,bold,italic", "bold,italic"},
	{"bold,blink,italic", "bold,italic"},
	{"underline", ""},
}

func TestParseNames(t *testing.T) {
	for i, test := range namesSmall {
		got := ParseNames(test.in).String()
		if test.want != got {
			t.Errorf("case %d, in %q,\nwant %s, \ngot %s", i, test.in, test.want, got)
		}
	}
}

var cssSmall = []smallcase{
	{"bold", "font-weight:bold;"},
	{"italic", "font-style: italic;"},
	{"underLine", "text-decoration-line: underline;"},
	{"bold,italic", "font-weight:bold;font-style: italic;"},
	{"italic,bold", "font-style: italic;font-weight:bold;"},
	{"justifyCenter", "text-align: center;"},
	{"orderedList", ""},
}

func TestCSS(t *testing.T) {
	for i, test := range cssSmall {
		got := ParseNames(test.in).CSS()
		if test.want != got {
			t.Errorf("case %d, in %q,\nwant %s, \ngot %s", i, test.in, test.want, got)
		}
	}
}

var fromCSSSmall = []smallcase{
	{"font-weight:bold;", "bold"},
	{"font-weight:bold;font-style: italic;", "bold,italic"},
	{"font-style: italic;font-weight:bold;", "italic,bold"},
	{"FONT-WEIGHT: 700", "bold"},
	{"font-weight: normal", ""},
	{"text-decoration: underline overline", "underLine"},
	{"color: red; text-align: center", "justifyCenter"},
	{"text-align: justify;", "justifyFull"},
	{"", ""},
}

func TestFromCSS(t *testing.T) {
	for i, test := range fromCSSSmall {
		ns, err := FromCSS(test.in)
		if err != nil {
			t.Errorf("case %d, in %q: %v", i, test.in, err)
			continue
		}
		if got := ns.String(); test.want != got {
			t.Errorf("case %d, in %q,\nwant %s, \ngot %s", i, test.in, test.want, got)
		}
	}
}

func TestInSync(t *testing.T) {
	for _, in := range []string{"", "bold", "bold,italic,underLine", "justifyRight", "orderedList"} {
		ns := ParseNames(in)
		if !InSync(ns, ns.CSS()) {
			t.Errorf("InSync(%q, %q) = false", in, ns.CSS())
		}
	}
	if InSync(Names{Bold}, "font-style: italic;") {
		t.Errorf("InSync reported mismatched names and css in sync")
	}
}

func TestNamesSet(t *testing.T) {
	ns := Names{Bold}.Merge(Names{Italic, Bold})
	if got := ns.String(); got != "bold,italic" {
		t.Errorf("Merge = %s", got)
	}
	if got := ns.Without(Bold).String(); got != "italic" {
		t.Errorf("Without = %s", got)
	}
	if got := ns.With(Underline).String(); got != "bold,italic,underLine" {
		t.Errorf("With = %s", got)
	}
	if got := ns.With(Italic).String(); got != "bold,italic" {
		t.Errorf("With(present) = %s", got)
	}
	if got := ns.String(); got != "bold,italic" {
		t.Errorf("receiver modified: %s", got)
	}
	if !(Names{Bold, Italic}).Equal(Names{Italic, Bold}) {
		t.Errorf("Equal depends on order")
	}
	mixed := Names{Bold, JustifyLeft, OrderedList, Italic}
	if got := mixed.Filter(Inline).String(); got != "bold,italic" {
		t.Errorf("Filter(Inline) = %s", got)
	}
}
