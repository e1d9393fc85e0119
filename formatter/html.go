package formatter

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML is a format for HTML output. Every pair and every regular number
// becomes a span element with CSS classes
//
//	pair | regular       kind of element
//	depth-N              nesting depth
//	exploding            pair which explodes next
//	splitting            regular number which splits next
//
// wrapped into a pre element of class "snailfish". Brackets and separators
// are text nodes.
type HTML struct {
	root    *html.Node
	stack   []*html.Node // open elements, innermost last
	lastErr error
}

// NewHTML creates an HTML formatter.
func NewHTML() *HTML {
	return &HTML{}
}

// Err returns the error of the last rendering, if any.
func (h *HTML) Err() error {
	return h.lastErr
}

// Node returns the element tree of the last number formatted.
func (h *HTML) Node() *html.Node {
	return h.root
}

func (h *HTML) top() *html.Node {
	return h.stack[len(h.stack)-1]
}

func (h *HTML) text(s string) {
	h.top().AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

func span(class string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Span,
		Data:     "span",
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
}

func classes(kind string, depth int, mark Mark) string {
	c := fmt.Sprintf("%s depth-%d", kind, depth)
	switch mark {
	case Exploding:
		c += " exploding"
	case Splitting:
		c += " splitting"
	}
	return c
}

// Preamble starts a new element tree with a `pre` element.
// (Part of interface Format)
func (h *HTML) Preamble(w io.Writer) {
	h.root = &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Pre,
		Data:     "pre",
		Attr:     []html.Attribute{{Key: "class", Val: "snailfish"}},
	}
	h.stack = []*html.Node{h.root}
	h.lastErr = nil
}

// Postamble renders the element tree to w.
// (Part of interface Format)
func (h *HTML) Postamble(w io.Writer) {
	if h.lastErr = html.Render(w, h.root); h.lastErr != nil {
		T().Errorf("formatter: rendering HTML: %v", h.lastErr)
		return
	}
	_, h.lastErr = io.WriteString(w, "\n")
}

// OpenPair opens a pair span and outputs an opening bracket.
// (Part of interface Format)
func (h *HTML) OpenPair(depth int, mark Mark, w io.Writer) {
	s := span(classes("pair", depth, mark))
	h.top().AppendChild(s)
	h.stack = append(h.stack, s)
	h.text("[")
}

// ClosePair outputs a closing bracket and closes the pair span.
// (Part of interface Format)
func (h *HTML) ClosePair(depth int, mark Mark, w io.Writer) {
	h.text("]")
	h.stack = h.stack[:len(h.stack)-1]
}

// Separator outputs a comma.
// (Part of interface Format)
func (h *HTML) Separator(w io.Writer) {
	h.text(",")
}

// Regular outputs a span holding a regular number.
// (Part of interface Format)
func (h *HTML) Regular(value int, depth int, mark Mark, w io.Writer) {
	s := span(classes("regular", depth, mark))
	s.AppendChild(&html.Node{Type: html.TextNode, Data: strconv.Itoa(value)})
	h.top().AppendChild(s)
}
