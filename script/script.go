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

// Package script runs edit scripts against an editing session.
//
// A script holds one command per line. Lines are split into words according
// to the Bourne shell's word-splitting rules; blank lines and lines starting
// with # are skipped. The commands are:
//
//      caret start | end              caret at the start or end of the document
//      caret after TEXT               caret right after the first TEXT
//      caret before TEXT              caret right before the first TEXT
//      select TEXT                    select the first TEXT
//      on NAME, off NAME              apply or remove an inline, block or list style
//      heading TAG                    turn the block into p or h1-h6
//      link URL [TITLE] [--new-tab]   link the selection or insert a link
//      unlink                         remove the link around the caret
//      emoji TEXT                     insert TEXT after the caret container
//      type TEXT                      type TEXT at the caret
//      enter                          split the block at the caret
package script // import "akhil.cc/editable/script"

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"akhil.cc/editable/ast"
	"akhil.cc/editable/cursor"
	"akhil.cc/editable/editor"
	"akhil.cc/editable/style"
	"akhil.cc/editable/toggle"
	sq "github.com/kballard/go-shellquote"
)

// Error reports the script line a command failed on.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Run executes the script read from src. It checks ctx between commands and
// stops at the first failing command. Commands that leave the document
// unchanged are not failures.
func Run(ctx context.Context, s *editor.Session, src io.Reader) error {
	sc := bufio.NewScanner(src)
	line := 0
	for sc.Scan() {
		line++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		words, err := sq.Split(text)
		if err != nil {
			return &Error{line, err}
		}
		if len(words) == 0 {
			continue
		}
		if err := exec(s, words); err != nil {
			return &Error{line, err}
		}
	}
	return sc.Err()
}

func exec(s *editor.Session, words []string) error {
	cmd, args := words[0], words[1:]
	switch cmd {
	case "caret":
		return caret(s, args)
	case "select":
		if len(args) != 1 {
			return fmt.Errorf("usage: select TEXT")
		}
		r, ok := cursor.Find(s.Document(), args[0])
		if !ok {
			return fmt.Errorf("text %q not found", args[0])
		}
		s.Select(r)
	case "on", "off":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s NAME", cmd)
		}
		name, ok := style.Parse(args[0])
		if !ok {
			return fmt.Errorf("unknown style %q", args[0])
		}
		switch style.Classify(name) {
		case style.Inline, style.Block, style.List:
		default:
			return fmt.Errorf("%s is a %s style, use its own command", name, style.Classify(name))
		}
		s.Toggle(name, cmd == "on", toggle.Extra{})
	case "heading":
		if len(args) != 1 {
			return fmt.Errorf("usage: heading TAG")
		}
		tag, ok := ast.ParseTag(args[0])
		switch {
		case ok && tag == ast.P:
			s.Toggle(style.Heading, false, toggle.Extra{})
		case ok && tag.Heading():
			s.Toggle(style.Heading, true, toggle.Extra{Heading: tag})
		default:
			return fmt.Errorf("heading tag %q is not p or h1-h6", args[0])
		}
	case "link":
		x := toggle.Extra{}
		var rest []string
		for _, a := range args {
			if a == "--new-tab" {
				x.NewTab = true
			} else {
				rest = append(rest, a)
			}
		}
		if len(rest) < 1 || len(rest) > 2 {
			return fmt.Errorf("usage: link URL [TITLE] [--new-tab]")
		}
		x.URL = rest[0]
		if len(rest) == 2 {
			x.Title = rest[1]
		}
		s.Toggle(style.Link, true, x)
	case "unlink":
		if len(args) != 0 {
			return fmt.Errorf("usage: unlink")
		}
		s.Toggle(style.Unlink, true, toggle.Extra{})
	case "emoji":
		if len(args) != 1 {
			return fmt.Errorf("usage: emoji TEXT")
		}
		s.Toggle(style.Emoji, true, toggle.Extra{Emoji: args[0]})
	case "type":
		if len(args) != 1 {
			return fmt.Errorf("usage: type TEXT")
		}
		s.Type(args[0])
	case "enter":
		if len(args) != 0 {
			return fmt.Errorf("usage: enter")
		}
		s.Enter()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func caret(s *editor.Session, args []string) error {
	d := s.Document()
	switch {
	case len(args) == 1 && args[0] == "start":
		s.Select(cursor.Start(d))
	case len(args) == 1 && args[0] == "end":
		s.Select(cursor.End(d))
	case len(args) == 2 && (args[0] == "after" || args[0] == "before"):
		r, ok := cursor.Find(d, args[1])
		if !ok {
			return fmt.Errorf("text %q not found", args[1])
		}
		p := r.End
		if args[0] == "before" {
			p = r.Start
		}
		s.Select(cursor.Caret(p))
	default:
		return fmt.Errorf("usage: caret start|end|after TEXT|before TEXT")
	}
	return nil
}
