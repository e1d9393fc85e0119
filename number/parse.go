package number

import (
	"fmt"
	"strconv"
)

// MaxDepth is the deepest pair nesting Parse accepts. Reduced numbers are
// nested at most four pairs deep; storage for a number grows exponentially
// with its depth.
const MaxDepth = 16

// ParseError is returned for malformed bracket notation. It carries the
// offending input and the byte offset at which parsing failed.
type ParseError struct {
	Text   string // complete input text
	Offset int    // byte offset of the error position within Text
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("snailfish number %q: %s at offset %d", e.Text, e.Msg, e.Offset)
}

// Parse parses a single snailfish number in bracket notation. Leading and
// trailing blanks are accepted, any other trailing input is an error.
func Parse(s string) (Term, error) {
	p := &parser{src: s}
	t, err := p.number()
	if err == nil {
		p.skipBlanks()
		if !p.atEnd() {
			err = p.errorf("unexpected trailing input %q", p.src[p.pos:])
		}
	}
	if err != nil {
		T().Debugf("number.Parse: %v", err)
		return nil, err
	}
	return t, nil
}

// MustParse is like Parse, but panics on malformed input. It simplifies
// initialization of tests and fixed values.
func MustParse(s string) Term {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// parser is a recursive-descent parser over a byte cursor.
type parser struct {
	src   string
	pos   int
	depth int // pair nesting at pos
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipBlanks() {
	for !p.atEnd() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{
		Text:   p.src,
		Offset: p.pos,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (p *parser) expect(c byte) error {
	p.skipBlanks()
	if p.peek() != c {
		if p.atEnd() {
			return p.errorf("expected %q, found end of input", c)
		}
		return p.errorf("expected %q, found %q", c, p.peek())
	}
	p.pos++
	return nil
}

func (p *parser) number() (Term, error) {
	p.skipBlanks()
	switch c := p.peek(); {
	case c == '[':
		return p.pair()
	case isDigit(c):
		return p.literal()
	case p.atEnd():
		return nil, p.errorf("expected number, found end of input")
	default:
		return nil, p.errorf("expected number, found %q", c)
	}
}

func (p *parser) pair() (Term, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	if p.depth++; p.depth > MaxDepth {
		p.pos--
		return nil, p.errorf("pairs nested deeper than %d", MaxDepth)
	}
	left, err := p.number()
	if err != nil {
		return nil, err
	}
	if err = p.expect(','); err != nil {
		return nil, err
	}
	right, err := p.number()
	if err != nil {
		return nil, err
	}
	if err = p.expect(']'); err != nil {
		return nil, err
	}
	p.depth--
	return &Pair{Left: left, Right: right}, nil
}

func (p *parser) literal() (Term, error) {
	start := p.pos
	for !p.atEnd() && isDigit(p.src[p.pos]) {
		p.pos++
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		p.pos = start
		return nil, p.errorf("invalid literal: %v", err)
	}
	return Literal(n), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
