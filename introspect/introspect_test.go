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

package introspect_test

import (
	"strings"
	"testing"

	"akhil.cc/editable/ast"
	"akhil.cc/editable/cursor"
	"akhil.cc/editable/introspect"
	"akhil.cc/editable/parser"
	"akhil.cc/editable/style"
	"github.com/sanity-io/litter"
)

var dumper = litter.Options{
	Compact:           true,
	StripPackageNames: false,
	HidePrivateFields: false,
	Separator:         " ",
}

type smallcase struct {
	in      string
	at      string
	want    string
	heading ast.Tag
}

var activeSmall = []smallcase{
	{"<p>Plain</p>", "Plain", "", ast.NoTag},
	{"<h3>Title</h3>", "Title", "", ast.H3},
	{"<p><b>Bold</b></p>", "Bold", "bold", ast.NoTag},
	{"<p><b><i>Both</i></b></p>", "Both", "italic,bold", ast.NoTag},
	{`<p data-stylenames="justifyRight" style="text-align: right;"><u>Under</u></p>`, "Under", "underLine,justifyRight", ast.NoTag},
	{`<ol><li><a href="https://go.dev"><b>Go</b></a></li></ol>`, "Go", "bold,link,orderedList", ast.NoTag},
	{`<ul><li>Item</li></ul>`, "Item", "unorderedList", ast.NoTag},
	{`<h1><i>Loud</i></h1>`, "Loud", "italic", ast.H1},
}

func TestActiveStylesAt(t *testing.T) {
	for i, test := range activeSmall {
		d := parser.MustParse(strings.NewReader(test.in))
		r, ok := cursor.Find(d, test.at)
		if !ok {
			t.Fatalf("case %d: %q not found", i, test.at)
		}
		s := cursor.At(d, cursor.Caret(r.End), nil)
		a := introspect.ActiveStylesAt(d, s.Container)
		want := style.ParseNames(test.want)
		if !a.Names.Equal(want) || a.Heading != test.heading {
			t.Errorf("case %d, in %q,\nwant %s %s, \ngot %s", i, test.in, test.want, test.heading, dumper.Sdump(a))
		}
	}
}

func TestEffectiveStyle(t *testing.T) {
	d := parser.MustParse(strings.NewReader(`<p><b>one<a href="u"><i>two</i></a></b></p>`))
	r, _ := cursor.Find(d, "two")
	two := cursor.At(d, r, nil)
	e := introspect.EffectiveStyle(d, two.Container)
	if !e.Names.Equal(style.Names{style.Italic}) || e.Depth != 1 || d.Kind(e.Boundary) != ast.Anchor {
		t.Errorf("inside the anchor: %s", dumper.Sdump(e))
	}
	if e.CSS != "font-style: italic;" {
		t.Errorf("css = %q", e.CSS)
	}

	r, _ = cursor.Find(d, "one")
	one := cursor.At(d, r, nil)
	e = introspect.EffectiveStyle(d, one.Container)
	if !e.Names.Equal(style.Names{style.Bold}) || e.Depth != 1 || e.Boundary != d.Blocks()[0] {
		t.Errorf("inside the span: %s", dumper.Sdump(e))
	}

	e = introspect.EffectiveStyle(d, d.Blocks()[0])
	if len(e.Names) != 0 || e.Depth != 0 || e.Boundary != d.Blocks()[0] {
		t.Errorf("at the block: %s", dumper.Sdump(e))
	}
}

func TestRegistryRefresh(t *testing.T) {
	var reg introspect.Registry
	changes := reg.Refresh(introspect.Active{Names: style.Names{style.Bold, style.JustifyLeft, style.Link}})
	want := []introspect.Change{{style.Bold, true}, {style.JustifyLeft, true}}
	if dumper.Sdump(changes) != dumper.Sdump(want) {
		t.Errorf("first refresh,\nwant %s, \ngot %s", dumper.Sdump(want), dumper.Sdump(changes))
	}

	changes = reg.Refresh(introspect.Active{Names: style.Names{style.Italic, style.JustifyLeft, style.OrderedList}, Heading: ast.H2})
	want = []introspect.Change{{style.Bold, false}, {style.Italic, true}, {style.OrderedList, true}}
	if dumper.Sdump(changes) != dumper.Sdump(want) {
		t.Errorf("second refresh,\nwant %s, \ngot %s", dumper.Sdump(want), dumper.Sdump(changes))
	}
	if reg.Heading != ast.H2 || !reg.Has(style.OrderedList) || reg.Has(style.Bold) {
		t.Errorf("registry: %s", dumper.Sdump(reg))
	}

	if changes := reg.Refresh(introspect.Active{Names: style.Names{style.JustifyLeft, style.Italic, style.OrderedList}}); len(changes) != 0 {
		t.Errorf("reordered names reported as changes: %s", dumper.Sdump(changes))
	}
}
