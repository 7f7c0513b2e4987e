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

// Examples for editor.go
package editor_test

import (
	"fmt"
	"log"

	"akhil.cc/editable/ast"
	"akhil.cc/editable/editor"
	"akhil.cc/editable/style"
	"akhil.cc/editable/toggle"
)

func ExampleSession() {
	s := editor.New("", editor.WithObserver(editor.ObserverFunc(func(u editor.Update) {
		for _, c := range u.Changes {
			fmt.Println(c.Name, c.Active)
		}
	})))
	s.Type("Shopping")
	s.Toggle(style.Heading, true, toggle.Extra{Heading: ast.H1})
	s.Enter()
	s.Toggle(style.UnorderedList, true, toggle.Extra{})
	s.Type("Milk")

	out, err := s.Markup()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output:
	// unorderedList true
	// <h1>Shopping</h1><ul><li>Milk</li></ul>
}
