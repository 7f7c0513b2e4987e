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

// Package editor is the host side of the engine: an editing session that
// owns a document, its live selection and the registry of active styles, and
// tells registered observers when the styles at the caret change.
//
// A Session is not safe for concurrent use. Inputs are applied one at a time,
// each running to completion before the next.
package editor // import "akhil.cc/editable/editor"

import (
	"akhil.cc/editable/ast"
	"akhil.cc/editable/cursor"
	"akhil.cc/editable/gen/html"
	"akhil.cc/editable/introspect"
	"akhil.cc/editable/parser"
	"akhil.cc/editable/style"
	"akhil.cc/editable/toggle"
	"go.uber.org/zap"
)

// Update is sent to observers after the registry is refreshed. Heading is p
// when the caret is not in a heading.
type Update struct {
	Changes  []introspect.Change
	Heading  ast.Tag
	Registry introspect.Registry
}

// Observer is notified of registry refreshes.
type Observer interface {
	StylesChanged(Update)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Update)

func (f ObserverFunc) StylesChanged(u Update) {
	f(u)
}

// Session is one editing session.
type Session struct {
	doc       *ast.Document
	sel       *cursor.Live
	engine    *toggle.Engine
	reg       introspect.Registry
	observers []Observer
	sanitizer parser.Sanitizer
	log       *zap.Logger
}

type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithSanitizer replaces the default Policy. A nil sanitizer loads and
// serializes markup as is.
func WithSanitizer(san parser.Sanitizer) Option {
	return func(s *Session) {
		s.sanitizer = san
	}
}

// WithObserver registers o for registry refreshes.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		s.observers = append(s.observers, o)
	}
}

// New starts a session on markup. Empty markup gives a single placeholder
// paragraph. The caret starts at the end of the document.
func New(markup string, opts ...Option) *Session {
	s := &Session{sanitizer: parser.Policy{}, log: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	s.doc = parser.Load(markup, s.sanitizer, s.log)
	s.sel = cursor.NewLive(cursor.End(s.doc))
	s.engine = toggle.New(s.doc, toggle.WithLogger(s.log))
	return s
}

// Observe registers o for registry refreshes.
func (s *Session) Observe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Session) Document() *ast.Document {
	return s.doc
}

// Selection returns the live selection.
func (s *Session) Selection() *cursor.Live {
	return s.sel
}

// Cursor captures a fresh snapshot of the live selection.
func (s *Session) Cursor() cursor.State {
	return cursor.Capture(s.doc, s.sel)
}

// Select moves the live selection to r and refreshes the registry.
func (s *Session) Select(r cursor.Range) []introspect.Change {
	s.sel.Set(r)
	return s.Refresh()
}

// Toggle applies or removes a style at the caret.
func (s *Session) Toggle(name style.Name, status bool, x toggle.Extra) toggle.Result {
	return s.after(s.engine.Toggle(name, status, s.Cursor(), x))
}

// Type inserts text at the caret.
func (s *Session) Type(text string) toggle.Result {
	return s.after(s.engine.InsertText(s.Cursor(), text))
}

// Enter splits the block at the caret, carrying the live inline styles
// into an empty new line.
func (s *Session) Enter() toggle.Result {
	return s.after(s.engine.NewLine(s.Cursor(), s.reg.Inline))
}

func (s *Session) after(res toggle.Result) toggle.Result {
	if res.Changed {
		s.Refresh()
	}
	return res
}

// Refresh recomputes the active styles at the caret and notifies observers.
func (s *Session) Refresh() []introspect.Change {
	var a introspect.Active
	if cs := s.Cursor(); cs.Active() {
		a = introspect.ActiveStylesAt(s.doc, cs.Container)
	}
	changes := s.reg.Refresh(a)
	heading := a.Heading
	if heading == ast.NoTag {
		heading = ast.P
	}
	u := Update{Changes: changes, Heading: heading, Registry: s.reg}
	for _, o := range s.observers {
		o.StylesChanged(u)
	}
	s.log.Debug("styles refreshed", zap.Int("changes", len(changes)), zap.Stringer("heading", heading))
	return changes
}

// Registry returns a copy of the active style registry.
func (s *Session) Registry() introspect.Registry {
	return s.reg
}

// Markup serializes the document and passes it through the sanitizer.
func (s *Session) Markup() (string, error) {
	out, err := html.Gen(s.doc).Output()
	if err != nil {
		return "", err
	}
	if s.sanitizer == nil {
		return string(out), nil
	}
	return s.sanitizer.Sanitize(string(out))
}

// IsEmpty reports whether the document shows no text.
func (s *Session) IsEmpty() bool {
	return s.doc.IsEmpty()
}

// EmptyTag returns the tag of the first block, so a host can style its
// placeholder hint the way that block will look.
func (s *Session) EmptyTag() ast.Tag {
	if bs := s.doc.Blocks(); len(bs) > 0 {
		return s.doc.Node(bs[0]).Tag
	}
	return ast.P
}

// Validate checks the document invariants.
func (s *Session) Validate() error {
	return s.doc.Validate()
}
