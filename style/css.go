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
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// FromCSS derives style names from an inline CSS text, in declaration order.
// Declarations without a style name are ignored, so FromCSS(ns.CSS()) holds
// the same names as ns.
func FromCSS(text string) (Names, error) {
	var ns Names
	add := func(n Name) {
		if n != Invalid && !ns.Has(n) {
			ns = append(ns, n)
		}
	}
	p := css.NewParser(parse.NewInputString(text), true)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return ns, err
			}
			return ns, nil
		case css.DeclarationGrammar:
			prop := strings.ToLower(string(data))
			for _, v := range keywords(p.Values()) {
				add(declared(prop, v))
			}
		}
	}
}

// InSync reports whether the CSS text renders exactly the given names.
// Only inline and block names have CSS; other names are not compared.
func InSync(ns Names, text string) bool {
	derived, err := FromCSS(text)
	if err != nil {
		return false
	}
	var rendered Names
	for _, n := range ns {
		if Render(n).CSS != "" {
			rendered = append(rendered, n)
		}
	}
	return rendered.Equal(derived)
}

func keywords(tokens []css.Token) []string {
	var kw []string
	for _, t := range tokens {
		switch t.TokenType {
		case css.IdentToken, css.NumberToken:
			kw = append(kw, strings.ToLower(string(t.Data)))
		}
	}
	return kw
}

func declared(prop, value string) Name {
	switch prop {
	case "font-weight":
		switch value {
		case "bold", "bolder", "700", "800", "900":
			return Bold
		}
	case "font-style":
		switch value {
		case "italic", "oblique":
			return Italic
		}
	case "text-decoration", "text-decoration-line":
		if value == "underline" {
			return Underline
		}
	case "text-align":
		switch value {
		case "left", "start":
			return JustifyLeft
		case "right", "end":
			return JustifyRight
		case "center":
			return JustifyCenter
		case "justify":
			return JustifyFull
		}
	}
	return Invalid
}
