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

// Package style is the lookup table behind every formatting decision of the
// editor. It maps a style name to its category and to the CSS text and
// structural tag used to render it.
//
// Style names correspond to the following categories and renderings:
// 	bold                        inline   font-weight:bold;
// 	italic                      inline   font-style: italic;
// 	underLine                   inline   text-decoration-line: underline;
// 	justifyLeft                 block    text-align: left;
// 	justifyRight                block    text-align: right;
// 	justifyCenter               block    text-align: center;
// 	justifyFull                 block    text-align: justify;
// 	orderedList                 list     <ol></ol>
// 	unorderedList               list     <ul></ul>
// 	heading                     heading  <h1></h1> ... <h6></h6>, <p></p>
// 	link, unlink                link     <a></a>
// 	emoji                       emoji
package style // import "akhil.cc/editable/style"

// Name is a formatting style the editor knows how to apply.
type Name int

const (
	Invalid Name = iota
	Bold
	Italic
	Underline
	JustifyLeft
	JustifyRight
	JustifyCenter
	JustifyFull
	OrderedList
	UnorderedList
	Heading
	Link
	Unlink
	Emoji
)

// Category groups style names by the kind of tree mutation they need.
type Category int

const (
	None Category = iota
	Inline
	Block
	List
	HeadingCategory
	LinkCategory
	EmojiCategory
)

var names = [...]string{
	Invalid:       "",
	Bold:          "bold",
	Italic:        "italic",
	Underline:     "underLine",
	JustifyLeft:   "justifyLeft",
	JustifyRight:  "justifyRight",
	JustifyCenter: "justifyCenter",
	JustifyFull:   "justifyFull",
	OrderedList:   "orderedList",
	UnorderedList: "unorderedList",
	Heading:       "heading",
	Link:          "link",
	Unlink:        "unlink",
	Emoji:         "emoji",
}

// String returns the persisted form of n, as written in the style-name attribute.
func (n Name) String() string {
	if n < 0 || int(n) >= len(names) {
		return ""
	}
	return names[n]
}

// Parse returns the Name whose persisted form is s.
func Parse(s string) (Name, bool) {
	for _, n := range All() {
		if names[n] == s {
			return n, true
		}
	}
	return Invalid, false
}

// All returns every valid style name in declaration order.
func All() []Name {
	all := make([]Name, 0, len(names)-1)
	for i := Bold; int(i) < len(names); i++ {
		all = append(all, i)
	}
	return all
}

func (c Category) String() string {
	switch c {
	case Inline:
		return "inline"
	case Block:
		return "block"
	case List:
		return "list"
	case HeadingCategory:
		return "heading"
	case LinkCategory:
		return "link"
	case EmojiCategory:
		return "emoji"
	}
	return "none"
}

// Classify returns the category of n. Invalid and unknown names are None.
func Classify(n Name) Category {
	switch n {
	case Bold, Italic, Underline:
		return Inline
	case JustifyLeft, JustifyRight, JustifyCenter, JustifyFull:
		return Block
	case OrderedList, UnorderedList:
		return List
	case Heading:
		return HeadingCategory
	case Link, Unlink:
		return LinkCategory
	case Emoji:
		return EmojiCategory
	}
	return None
}

// Attributes is how a style is rendered: the CSS text it contributes to the
// style attribute, and the element tag it needs, if any.
type Attributes struct {
	CSS string
	Tag string
}

// Render returns the rendering attributes of n. Heading styles have no fixed
// tag; the target level travels with the request.
func Render(n Name) Attributes {
	switch n {
	case Bold:
		return Attributes{CSS: "font-weight:bold;", Tag: "span"}
	case Italic:
		return Attributes{CSS: "font-style: italic;", Tag: "span"}
	case Underline:
		return Attributes{CSS: "text-decoration-line: underline;", Tag: "span"}
	case JustifyLeft:
		return Attributes{CSS: "text-align: left;"}
	case JustifyRight:
		return Attributes{CSS: "text-align: right;"}
	case JustifyCenter:
		return Attributes{CSS: "text-align: center;"}
	case JustifyFull:
		return Attributes{CSS: "text-align: justify;"}
	case OrderedList:
		return Attributes{Tag: "ol"}
	case UnorderedList:
		return Attributes{Tag: "ul"}
	case Link, Unlink:
		return Attributes{Tag: "a"}
	}
	return Attributes{}
}
