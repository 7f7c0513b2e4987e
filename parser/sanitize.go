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

package parser

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Sanitizer turns untrusted markup into markup that is safe to load verbatim.
type Sanitizer interface {
	Sanitize(markup string) (string, error)
}

// SanitizerFunc adapts a function to the Sanitizer interface.
type SanitizerFunc func(string) (string, error)

func (f SanitizerFunc) Sanitize(markup string) (string, error) {
	return f(markup)
}

// dropped elements are removed together with their content.
var dropped = []string{
	"script", "style", "iframe", "object", "embed", "noscript",
	"template", "link", "meta", "base", "frame", "frameset",
}

// void elements have no end tag, so their content is never skipped.
var void = map[string]bool{
	"embed": true, "link": true, "meta": true, "base": true, "frame": true,
}

// Policy is the default token sanitizer. It removes script-like elements and
// their content, comments and doctypes, event handler attributes, and links
// with script URLs. DropTags names extra elements to remove with their
// content.
type Policy struct {
	DropTags []string
}

func (p Policy) drops(tag string) bool {
	for _, t := range dropped {
		if t == tag {
			return true
		}
	}
	for _, t := range p.DropTags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Sanitize re-serializes markup token by token, leaving out what the policy
// forbids.
func (p Policy) Sanitize(markup string) (string, error) {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(markup))
	var skip []string
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() == io.EOF {
				return b.String(), nil
			}
			return "", z.Err()
		}
		tk := z.Token()
		if len(skip) > 0 {
			top := skip[len(skip)-1]
			switch {
			case tt == html.StartTagToken && tk.Data == top:
				skip = append(skip, top)
			case tt == html.EndTagToken && tk.Data == top:
				skip = skip[:len(skip)-1]
			}
			continue
		}
		switch tt {
		case html.CommentToken, html.DoctypeToken:
			continue
		case html.StartTagToken, html.SelfClosingTagToken:
			if p.drops(tk.Data) {
				if tt == html.StartTagToken && !void[tk.Data] {
					skip = append(skip, tk.Data)
				}
				continue
			}
			tk.Attr = safeAttrs(tk.Attr)
		case html.EndTagToken:
			if p.drops(tk.Data) {
				continue
			}
		}
		b.WriteString(tk.String())
	}
}

func safeAttrs(attrs []html.Attribute) []html.Attribute {
	out := attrs[:0]
	for _, a := range attrs {
		if isEventHandler(a.Key) {
			continue
		}
		if (a.Key == "href" || a.Key == "src") && scriptURL(a.Val) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// isEventHandler reports whether an attribute name is an event handler
// such as onclick.
func isEventHandler(key string) bool {
	return len(key) > 2 && strings.HasPrefix(strings.ToLower(key), "on")
}

func scriptURL(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.HasPrefix(v, "javascript:") || strings.HasPrefix(v, "vbscript:") || strings.HasPrefix(v, "data:")
}
