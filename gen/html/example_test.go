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

// Examples for html.go
package html_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"akhil.cc/editable/gen/html"
	"akhil.cc/editable/parser"
)

func ExampleGen() {
	src := `<h1>Heading 1</h1><p>This is a paragraph with <b>bold</b> text.</p>`
	d := parser.MustParse(strings.NewReader(src))
	g := html.Gen(d)
	var out bytes.Buffer
	g.Stdout = &out

	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", out.String())
	// Output:
	// <h1>Heading 1</h1><p>This is a paragraph with <span data-stylenames="bold" style="font-weight:bold;">bold</span> text.</p>
}

func ExampleGenContext() {
	d := parser.MustParse(strings.NewReader(`<p>One</p><p>Two</p>`))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	g := html.GenContext(ctx, d)
	var out bytes.Buffer
	g.Stdout = &out

	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", out.String())
	// Output:
	// <p>One</p><p>Two</p>
}

func ExampleGenerator_StdoutPipe() {
	d := parser.MustParse(strings.NewReader(`<ol><li>First</li><li>Second</li></ol>`))
	g := html.Gen(d)
	stdout, err := g.StdoutPipe()
	if err != nil {
		log.Fatal(err)
	}

	if err := g.Start(); err != nil {
		log.Fatal(err)
	}
	b, _ := io.ReadAll(stdout)
	fmt.Printf("%s\n", b)

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	// Output:
	// <ol><li>First</li><li>Second</li></ol>
}

func ExampleGenerator_Output() {
	d := parser.MustParse(strings.NewReader(`<p><a href="https://go.dev" target="_blank">Go</a></p>`))
	b, err := html.Gen(d).Output()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", b)
	// Output:
	// <p><a href="https://go.dev" target="_blank">Go</a></p>
}
