package ast

import (
	"strings"
	"testing"

	"akhil.cc/editable/style"
	"go.uber.org/multierr"
)

func TestValidate(t *testing.T) {
	if err := NewEmpty().Validate(); err != nil {
		t.Errorf("empty document: %v", err)
	}
	d, _, _ := hello()
	if err := d.Validate(); err != nil {
		t.Errorf("hello: %v", err)
	}
}

func TestValidateViolations(t *testing.T) {
	type badcase struct {
		build func() *Document
		want  string
	}
	cases := []badcase{
		{func() *Document { return New() }, "no blocks"},
		{func() *Document {
			d := New()
			d.AppendChild(d.Root(), d.CreateBlock(LI, "x"))
			return d
		}, "li outside a list"},
		{func() *Document {
			d := New()
			d.AppendChild(d.Root(), d.CreateList(UL))
			return d
		}, "empty ul"},
		{func() *Document {
			d := New()
			l := d.CreateList(OL)
			d.AppendChild(l, d.CreateBlock(P, "x"))
			d.AppendChild(d.Root(), l)
			return d
		}, "which is not li"},
		{func() *Document {
			d := New()
			p := d.CreateBlock(P, "x")
			d.Remove(d.FirstChild(p))
			d.AppendChild(d.Root(), p)
			return d
		}, "has no children"},
		{func() *Document {
			d, _, span := hello()
			d.Node(span).CSS = "font-style: italic;"
			return d
		}, "out of sync"},
		{func() *Document {
			d, p, _ := hello()
			d.SetStyles(p, style.Names{style.Bold})
			return d
		}, "inline style"},
		{func() *Document {
			d, _, span := hello()
			d.AppendChild(span, d.CreateBlock(P, "x"))
			return d
		}, "block inside span"},
	}
	for i, test := range cases {
		err := test.build().Validate()
		if err == nil {
			t.Errorf("case %d: no error, want %q", i, test.want)
			continue
		}
		found := false
		for _, e := range multierr.Errors(err) {
			if strings.Contains(e.Error(), test.want) {
				found = true
			}
		}
		if !found {
			t.Errorf("case %d,\nwant %s, \ngot %v", i, test.want, err)
		}
	}
}
