package html

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"akhil.cc/editable/ast"
	"akhil.cc/editable/parser"
)

type smallcase struct {
	in   string
	want string
}

var escapeSmall = []smallcase{
	{"<p>a &lt; b &amp; c</p>", "<p>a &lt; b &amp; c</p>"},
	{`<p><a href="https://go.dev/?a=1&amp;b=2">Go</a></p>`, `<p><a href="https://go.dev/?a=1&amp;b=2">Go</a></p>`},
	{"<h3>" + ast.ZeroWidth + "</h3>", "<h3>" + ast.ZeroWidth + "</h3>"},
	{`<ol><li data-stylenames="justifyFull" style="text-align: justify;"><u>x</u></li></ol>`,
		`<ol><li data-stylenames="justifyFull" style="text-align: justify;"><span data-stylenames="underLine" style="text-decoration-line: underline;">x</span></li></ol>`},
}

func TestEscape(t *testing.T) {
	for i, test := range escapeSmall {
		d := parser.MustParse(strings.NewReader(test.in))
		var buf bytes.Buffer
		g := Gen(d)
		g.Stdout = &buf
		if err := g.Run(); err != nil {
			t.Errorf("case %d: %v", i, err)
		}
		got := buf.String()
		if test.want != got {
			t.Errorf("case %d, in %q,\nwant %s, \ngot %s", i, test.in, test.want, got)
		}
	}
}

func TestIndent(t *testing.T) {
	d := parser.MustParse(strings.NewReader("<ul><li>A</li><li>B</li></ul>"))
	var buf bytes.Buffer
	g := Gen(d)
	g.Stdout = &buf
	g.Indent = 2
	if err := g.Run(); err != nil {
		t.Fatal(err)
	}
	if want := "<ul>\n  <li>A</li>\n  <li>B</li>\n</ul>"; !strings.Contains(buf.String(), want) {
		t.Errorf("\nwant %q, \ngot %q", want, buf.String())
	}
}

func TestGenContextCanceled(t *testing.T) {
	d := parser.MustParse(strings.NewReader("<p>A</p><p>B</p>"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := GenContext(ctx, d).Output()
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want %v", err, context.Canceled)
	}
	if len(out) != 0 {
		t.Errorf("wrote %q after cancellation", out)
	}
}

func TestStdoutPipe(t *testing.T) {
	d := parser.MustParse(strings.NewReader("<p>A</p><p>B</p>"))
	g := Gen(d)
	r, err := g.StdoutPipe()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.StdoutPipe(); err == nil {
		t.Errorf("second StdoutPipe succeeded")
	}
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	b, _ := io.ReadAll(r)
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if got := string(b); got != "<p>A</p><p>B</p>" {
		t.Errorf("piped %q", got)
	}
}

func TestStdoutPipeUnread(t *testing.T) {
	d := parser.MustParse(strings.NewReader("<p>A</p><p>B</p>"))
	g := Gen(d)
	r, err := g.StdoutPipe()
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Run(); err == nil {
		t.Fatal("Run with an unread pipe succeeded")
	}
	b, _ := io.ReadAll(r)
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if got := string(b); got != "<p>A</p><p>B</p>" {
		t.Errorf("piped %q", got)
	}
}

func TestMisuse(t *testing.T) {
	d := ast.NewEmpty()
	if err := Gen(d).Wait(); err == nil {
		t.Errorf("Wait before Start succeeded")
	}
	g := Gen(d)
	g.Stdout = io.Discard
	if _, err := g.Output(); err == nil {
		t.Errorf("Output with Stdout set succeeded")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	g := Gen(parser.MustParse(strings.NewReader("<p>A</p><p>B</p>")))
	g.Stdout = failWriter{}
	if err := g.Run(); err == nil || err.Error() != "disk full" {
		t.Errorf("err = %v", err)
	}
}
