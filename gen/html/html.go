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

// Package html writes an *ast.Document as markup. The output is what the
// editor persists and what package parser loads back.
//
// Document nodes correspond to the following HTML:
// 	Block p, h1-h6, li          <p></p>, <h1></h1> ... <h6></h6>, <li></li>
// 	List                        <ol></ol>, <ul></ul>
// 	Span                        <span></span>
// 	Anchor                      <a href=""></a>, <a href="" target="_blank"></a>
// 	Placeholder                 U+200B
//
// Styled elements carry the data-stylenames attribute followed by the style
// attribute, both derived from the node's style names.
package html // import "akhil.cc/editable/gen/html"

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"akhil.cc/editable/ast"
	"github.com/beevik/etree"
)

type stickyCountWriter struct {
	n   int64
	err error
	w   io.Writer
}

func (c *stickyCountWriter) Write(p []byte) (n int, err error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err = c.w.Write(p)
	c.err = err
	c.n += int64(n)
	return
}

// Generator represents a non-reusable HTML output generator for an *ast.Document.
type Generator struct {
	// Stdout specifies the generator's output.
	Stdout io.Writer
	// Indent, when positive, indents nested elements by that many spaces.
	Indent int

	ctx      context.Context
	doc      *ast.Document
	waitdone chan error

	m     sync.Mutex
	pipes []io.Closer
}

// Gen returns the Generator struct to convert the given document into HTML output.
//
// It sets only the document in the returned structure.
func Gen(doc *ast.Document) *Generator {
	return &Generator{ctx: context.TODO(), doc: doc}
}

// GenContext is like Gen but includes a context.
//
// The provided context is used to halt HTML generation after writing a
// top-level block or list.
func GenContext(ctx context.Context, doc *ast.Document) *Generator {
	if ctx == nil {
		panic("nil context")
	}
	return &Generator{ctx: ctx, doc: doc}
}

// Start starts the generator but does not wait for it to complete.
func (g *Generator) Start() error {
	if g.Stdout == nil {
		g.Stdout = io.Discard
	}
	g.waitdone = make(chan error)
	go func() {
		err := g.gen()
		g.m.Lock()
		for _, p := range g.pipes {
			p.Close()
		}
		g.pipes = nil
		g.m.Unlock()
		g.waitdone <- err
	}()
	return nil
}

// Wait waits for the generator to complete and finish copying to Stdout. It
// is an error to call Wait before Start has been called, or while output
// written to a pipe from StdoutPipe is still unread.
func (g *Generator) Wait() error {
	if g.waitdone == nil {
		return fmt.Errorf("not started")
	}
	// a pipe without a reader would block the generator forever
	g.m.Lock()
	if g.pipes != nil {
		g.m.Unlock()
		return fmt.Errorf("all reads from the pipe have not completed")
	}
	g.m.Unlock()
	err := <-g.waitdone
	close(g.waitdone)
	return err
}

// Run starts the generator and waits for it to complete, returning
// any errors encountered.
func (g *Generator) Run() error {
	if err := g.Start(); err != nil {
		return err
	}
	return g.Wait()
}

// StdoutPipe returns a pipe that is connected to the generator's
// standard output. The pipe is closed once generation ends, so all reads
// from it must complete before calling Wait. It is thus incorrect to call
// Run when using StdoutPipe.
func (g *Generator) StdoutPipe() (io.Reader, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	pr, pw := io.Pipe()
	g.Stdout = pw
	g.pipes = append(g.pipes, pw)
	return pr, nil
}

// Output runs the generator and returns its standard output.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	var stdout bytes.Buffer
	g.Stdout = &stdout
	err := g.Run()
	return stdout.Bytes(), err
}

// String renders doc without a context.
func String(doc *ast.Document) string {
	out, _ := Gen(doc).Output()
	return string(out)
}

func (g *Generator) gen() error {
	cw := &stickyCountWriter{0, nil, g.Stdout}
	for _, id := range g.doc.Children(g.doc.Root()) {
		select {
		case <-g.ctx.Done():
			if cw.err != nil {
				return cw.err
			}
			return g.ctx.Err()
		default:
			doc := etree.NewDocument()
			doc.WriteSettings = etree.WriteSettings{
				CanonicalEndTags: true,
				CanonicalText:    true,
				CanonicalAttrVal: true,
			}
			g.element(&doc.Element, id)
			if g.Indent > 0 {
				doc.Indent(g.Indent)
			}
			if _, err := doc.WriteTo(cw); err != nil {
				return err
			}
		}
	}
	return cw.err
}

func (g *Generator) element(parent *etree.Element, id ast.NodeID) {
	n := g.doc.Node(id)
	switch n.Kind {
	case ast.Text:
		parent.CreateText(n.Text)
		return
	case ast.Placeholder:
		parent.CreateText(ast.ZeroWidth)
		return
	}
	el := parent.CreateElement(tagName(n))
	if len(n.Names) > 0 {
		el.CreateAttr("data-stylenames", n.Names.String())
	}
	if n.CSS != "" {
		el.CreateAttr("style", n.CSS)
	}
	if n.Kind == ast.Anchor {
		el.CreateAttr("href", n.Href)
		if n.NewTab {
			el.CreateAttr("target", "_blank")
		}
	}
	for _, c := range n.Children {
		g.element(el, c)
	}
}

func tagName(n *ast.Node) string {
	switch n.Kind {
	case ast.Span:
		return "span"
	case ast.Anchor:
		return "a"
	}
	return n.Tag.String()
}
