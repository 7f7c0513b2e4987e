package ast

import (
	"strings"
	"testing"

	"akhil.cc/editable/style"
	"github.com/sanity-io/litter"
)

var dumper = litter.Options{
	Compact:           true,
	StripPackageNames: false,
	HidePrivateFields: false,
	Separator:         " ",
}

// hello builds <p>Hello <span bold>World</span></p> and returns the
// document, the paragraph and the span.
func hello() (*Document, NodeID, NodeID) {
	d := New()
	p := d.CreateBlock(P, "Hello ")
	span := d.CreateInline(Span, "World", style.Names{style.Bold})
	d.AppendChild(p, span)
	d.AppendChild(d.Root(), p)
	return d, p, span
}

// shape renders the structure under id in a compact form for comparisons.
func shape(d *Document, id NodeID) string {
	var b strings.Builder
	var rec func(NodeID)
	rec = func(id NodeID) {
		n := d.Node(id)
		switch n.Kind {
		case Text:
			b.WriteString(n.Text)
			return
		case Placeholder:
			b.WriteString("_")
			return
		}
		name := n.Kind.String()
		if n.Tag != NoTag {
			name = n.Tag.String()
		}
		b.WriteString("(" + name)
		if len(n.Names) > 0 {
			b.WriteString("[" + n.Names.String() + "]")
		}
		for _, c := range n.Children {
			b.WriteString(" ")
			rec(c)
		}
		b.WriteString(")")
	}
	rec(id)
	return b.String()
}

func TestSplitAt(t *testing.T) {
	type splitcase struct {
		off        int
		head, tail string
	}
	cases := []splitcase{
		{8, "(p Hello  (span[bold] Wo))", "(p (span[bold] rld))"},
		{6, "(p Hello )", "(p (span[bold] World))"},
		{3, "(p Hel)", "(p lo  (span[bold] World))"},
		{0, "(p)", "(p Hello  (span[bold] World))"},
		{11, "(p Hello  (span[bold] World))", ""},
	}
	for i, test := range cases {
		d, p, _ := hello()
		tail := d.SplitAt(p, test.off)
		got := ""
		if tail != Nil {
			got = shape(d, tail)
			if d.Parent(tail) != Nil {
				t.Errorf("case %d: tail is attached", i)
			}
		}
		if head := shape(d, p); head != test.head || got != test.tail {
			t.Errorf("case %d, in %d,\nwant %s | %s, \ngot %s | %s", i, test.off, test.head, test.tail, head, got)
		}
	}
}

func TestSplitAtGrapheme(t *testing.T) {
	d := New()
	id := d.CreateText("ae\u0301")
	tail := d.SplitAt(id, 2)
	if got := d.Node(id).Text; got != "a" {
		t.Errorf("head = %q, want %q", got, "a")
	}
	if got := d.Node(tail).Text; got != "e\u0301" {
		t.Errorf("tail = %q, want %q", got, "e\u0301")
	}
}

func TestInsertTextGrapheme(t *testing.T) {
	d := New()
	id := d.CreateText("ae\u0301")
	if end := d.InsertText(id, 2, "x"); end != 2 {
		t.Errorf("InsertText returned %d, want 2", end)
	}
	if got := d.Node(id).Text; got != "axe\u0301" {
		t.Errorf("text = %q", got)
	}
}

func TestOffsets(t *testing.T) {
	d, p, span := hello()
	first := d.FirstChild(p)
	world := d.FirstChild(span)

	if off, ok := d.TextOffset(p, world, 2); !ok || off != 8 {
		t.Errorf("TextOffset(world, 2) = %d, %v", off, ok)
	}
	if off, ok := d.TextOffset(p, p, 1); !ok || off != 6 {
		t.Errorf("TextOffset(p, 1) = %d, %v", off, ok)
	}
	if off, ok := d.TextOffset(p, p, 2); !ok || off != 11 {
		t.Errorf("TextOffset(p, 2) = %d, %v", off, ok)
	}
	if _, ok := d.TextOffset(span, first, 0); ok {
		t.Errorf("TextOffset accepted a node outside within")
	}

	if l, off := d.Locate(p, 6); l != first || off != 6 {
		t.Errorf("Locate(6) = %d, %d", l, off)
	}
	if l, off := d.LocateAfter(p, 6); l != world || off != 0 {
		t.Errorf("LocateAfter(6) = %d, %d", l, off)
	}
	if l, off := d.LocateAfter(p, 11); l != world || off != 5 {
		t.Errorf("LocateAfter(11) = %d, %d", l, off)
	}
	if l, off := d.Locate(p, 40); l != world || off != 5 {
		t.Errorf("Locate(40) = %d, %d", l, off)
	}
}

func TestDeleteText(t *testing.T) {
	d, p, _ := hello()
	if got := d.DeleteText(p, 8, 3); got != "lo Wo" {
		t.Errorf("deleted %q", got)
	}
	if got := shape(d, p); got != "(p Hel (span[bold] rld))" {
		t.Errorf("after delete: %s", got)
	}

	d, p, span := hello()
	d.DeleteText(p, 6, 11)
	if d.Attached(span) {
		t.Errorf("emptied span still attached: %s", shape(d, p))
	}
	d.DeleteText(p, 0, 6)
	if got := shape(d, p); got != "(p _)" {
		t.Errorf("emptied block: %s", got)
	}
}

func TestTidy(t *testing.T) {
	d := New()
	p := d.CreateBlock(P, "")
	d.AppendChild(p, d.CreatePlaceholder())
	d.AppendChild(d.Root(), p)
	d.Tidy(d.Root())
	if got := shape(d, p); got != "(p _)" {
		t.Errorf("placeholders: %s", got)
	}

	d.AppendChild(p, d.CreateText("x"))
	d.AppendChild(p, d.CreateInline(Span, "", style.Names{style.Italic}))
	d.AppendChild(p, d.CreateText(""))
	d.Tidy(d.Root())
	if got := shape(d, p); got != "(p x (span[italic] _))" {
		t.Errorf("mixed: %s", got)
	}

	l := d.CreateList(UL)
	d.AppendChild(d.Root(), l)
	d.Remove(p)
	d.Tidy(d.Root())
	if got := shape(d, d.Root()); got != "(root (p _))" {
		t.Errorf("empty root: %s", got)
	}
}

func TestRebuild(t *testing.T) {
	d := New()
	a := d.CreateAnchor("Go", "https://go.dev", true, style.Names{style.Bold})
	span := d.Rebuild(a, Span, NoTag)
	n := d.Node(span)
	if n.Href != "" || n.NewTab {
		t.Errorf("link fields survived: %s", dumper.Sdump(n))
	}
	if got := shape(d, span); got != "(span[bold] Go)" {
		t.Errorf("rebuilt: %s", got)
	}
	if len(d.Children(a)) != 0 {
		t.Errorf("children not moved")
	}
}

func TestWalk(t *testing.T) {
	d, _, _ := hello()
	var kinds []string
	Walk(d, d.Root(), func(n *Node) error {
		kinds = append(kinds, n.Kind.String())
		return nil
	})
	want := "root block text span text"
	if got := strings.Join(kinds, " "); got != want {
		t.Errorf("\nwant %s, \ngot %s", want, got)
	}
}

func TestBlocks(t *testing.T) {
	d := New()
	p := d.CreateBlock(H2, "Title")
	l := d.CreateList(OL)
	a, b := d.CreateBlock(LI, "a"), d.CreateBlock(LI, "b")
	d.AppendChild(l, a)
	d.AppendChild(l, b)
	d.AppendChild(d.Root(), p)
	d.AppendChild(d.Root(), l)
	got := d.Blocks()
	if len(got) != 3 || got[0] != p || got[1] != a || got[2] != b {
		t.Errorf("Blocks() = %s", dumper.Sdump(got))
	}
	if d.NearestBlock(d.FirstChild(b), Nil) != b {
		t.Errorf("NearestBlock missed the li")
	}
	if d.NearestBlock(l, Nil) != Nil {
		t.Errorf("NearestBlock found a block above a list")
	}
}
