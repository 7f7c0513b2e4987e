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

// Package parser loads markup into an *ast.Document.
//
// The markup is read as an HTML fragment. Elements map onto the document as
// follows:
//
//      p, div                      Block p (a div holding blocks is flattened)
//      h1 ... h6                   Block h1 ... h6
//      ol, ul                      List, holding li Blocks
//      li outside a list           Block p
//      span                        Span
//      strong, b / em, i / u       Span with bold / italic / underLine added
//      a                           Anchor (href, target="_blank")
//      text of only U+200B         Placeholder
//
// Style names come from the data-stylenames attribute, or are derived from
// the style attribute when it is missing. Unknown elements are flattened into
// their parent; inline content found outside a block is wrapped in a p.
//
// Parse reports each such repair; the returned document is valid regardless.
package parser // import "akhil.cc/editable/parser"

import (
	"fmt"
	"io"
	"strings"

	"akhil.cc/editable/ast"
	"akhil.cc/editable/style"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StyleNamesAttr is the attribute holding the comma-joined style names.
const StyleNamesAttr = "data-stylenames"

// MustParse is like Parse but panics if the source cannot be read or needed repairs.
func MustParse(src io.Reader) *ast.Document {
	d, err := Parse(src)
	if err != nil {
		panic("Parse error: " + err.Error())
	}
	return d
}

// Parse reads markup and builds a document from it. When the source cannot be
// read, the document is nil. Otherwise the document is valid and the error,
// if any, lists the repairs made to get there.
func Parse(src io.Reader) (*ast.Document, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(src, ctx)
	if err != nil {
		return nil, err
	}
	b := &builder{d: ast.New()}
	for _, n := range nodes {
		b.top(n)
	}
	root := b.d.Root()
	b.d.Tidy(root)
	return b.d, b.err
}

// Load sanitizes markup with s and parses it. It never fails: markup that
// cannot be sanitized or read yields an empty document. A nil s loads the
// markup as is.
func Load(markup string, s Sanitizer, log *zap.Logger) *ast.Document {
	if log == nil {
		log = zap.NewNop()
	}
	if strings.TrimSpace(markup) == "" {
		return ast.NewEmpty()
	}
	if s != nil {
		clean, err := s.Sanitize(markup)
		if err != nil {
			log.Warn("Unable to sanitize markup, starting empty", zap.Error(err))
			return ast.NewEmpty()
		}
		markup = clean
	}
	d, err := Parse(strings.NewReader(markup))
	if d == nil {
		log.Warn("Unable to read markup, starting empty", zap.Error(err))
		return ast.NewEmpty()
	}
	if err != nil {
		log.Debug("Markup repaired", zap.Error(err))
	}
	return d
}

type builder struct {
	d   *ast.Document
	err error
	// para collects inline content met outside any block.
	para ast.NodeID
}

func (b *builder) errorf(format string, args ...interface{}) {
	b.err = multierr.Append(b.err, fmt.Errorf(format, args...))
}

func (b *builder) top(n *html.Node) {
	d := b.d
	root := d.Root()
	switch {
	case n.Type == html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return
		}
		b.naked(n)
		return
	case n.Type != html.ElementNode:
		return
	}
	switch n.DataAtom {
	case atom.Div:
		if hasBlock(n) {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				b.top(c)
			}
			return
		}
		b.para = ast.Nil
		d.AppendChild(root, b.block(n, ast.P))
	case atom.P, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		b.para = ast.Nil
		tag, _ := ast.ParseTag(n.Data)
		d.AppendChild(root, b.block(n, tag))
	case atom.Li:
		b.errorf("li outside a list loaded as p")
		b.para = ast.Nil
		d.AppendChild(root, b.block(n, ast.P))
	case atom.Ol, atom.Ul:
		b.para = ast.Nil
		if l := b.list(n); l != ast.Nil {
			d.AppendChild(root, l)
		}
	case atom.Br:
		b.para = ast.Nil
	default:
		b.naked(n)
	}
}

// naked wraps inline content outside a block into the open paragraph.
func (b *builder) naked(n *html.Node) {
	if b.para == ast.Nil {
		b.errorf("inline %s outside a block wrapped in p", describe(n))
		b.para = b.d.CreateBlock(ast.P, "")
		b.d.AppendChild(b.d.Root(), b.para)
	}
	b.inline(b.para, n)
}

func (b *builder) list(n *html.Node) ast.NodeID {
	d := b.d
	tag := ast.UL
	if n.DataAtom == atom.Ol {
		tag = ast.OL
	}
	l := d.CreateList(tag)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.ElementNode && c.DataAtom == atom.Li:
			d.AppendChild(l, b.block(c, ast.LI))
		case c.Type == html.ElementNode, c.Type == html.TextNode && strings.TrimSpace(c.Data) != "":
			b.errorf("%s inside %s wrapped in li", describe(c), tag)
			li := d.CreateBlock(ast.LI, "")
			b.inline(li, c)
			d.AppendChild(l, li)
		}
	}
	if len(d.Children(l)) == 0 {
		b.errorf("empty %s dropped", tag)
		return ast.Nil
	}
	return l
}

func (b *builder) block(n *html.Node, tag ast.Tag) ast.NodeID {
	id := b.d.CreateBlock(tag, "")
	b.d.SetStyles(id, b.names(n, style.Block))
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.inline(id, c)
	}
	return id
}

func (b *builder) inline(parent ast.NodeID, n *html.Node) {
	d := b.d
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" && strings.Contains(n.Data, "\n") {
			return
		}
		text := strings.ReplaceAll(n.Data, ast.ZeroWidth, "")
		switch {
		case text != "":
			d.AppendChild(parent, d.CreateText(text))
		case n.Data != "":
			d.AppendChild(parent, d.CreatePlaceholder())
		}
		return
	case html.ElementNode:
	default:
		return
	}
	var id ast.NodeID
	switch n.DataAtom {
	case atom.Span, atom.Strong, atom.B, atom.Em, atom.I, atom.U:
		id = d.CreateInline(ast.Span, "", b.names(n, style.Inline))
	case atom.A:
		href, newTab := "", false
		for _, a := range n.Attr {
			switch a.Key {
			case "href":
				href = a.Val
			case "target":
				newTab = a.Val == "_blank"
			}
		}
		id = d.CreateAnchor("", href, newTab, b.names(n, style.Inline))
	case atom.Br:
		return
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			b.inline(parent, c)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.inline(id, c)
	}
	d.AppendChild(parent, id)
}

var aliases = map[atom.Atom]style.Name{
	atom.Strong: style.Bold,
	atom.B:      style.Bold,
	atom.Em:     style.Italic,
	atom.I:      style.Italic,
	atom.U:      style.Underline,
}

// names reads the style names of n, keeping those of category c.
func (b *builder) names(n *html.Node, c style.Category) style.Names {
	var ns style.Names
	var css string
	found := false
	for _, a := range n.Attr {
		switch a.Key {
		case StyleNamesAttr:
			ns, found = style.ParseNames(a.Val), true
		case "style":
			css = a.Val
		}
	}
	if !found && css != "" {
		var err error
		if ns, err = style.FromCSS(css); err != nil {
			b.errorf("style of %s: %v", describe(n), err)
		}
	}
	if alias, ok := aliases[n.DataAtom]; ok {
		ns = ns.With(alias)
	}
	ns = ns.Filter(c)
	if c == style.Block && len(ns) > 1 {
		b.errorf("%s carries %d alignments, kept %s", describe(n), len(ns), ns[0])
		ns = ns[:1]
	}
	return ns
}

func hasBlock(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.P, atom.Div, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Ol, atom.Ul, atom.Li:
			return true
		}
	}
	return false
}

func describe(n *html.Node) string {
	if n.Type == html.TextNode {
		return "text"
	}
	return "<" + n.Data + ">"
}
