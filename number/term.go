package number

import (
	"strconv"
	"strings"
)

// Term is a parsed snailfish number. It is either a Literal or a *Pair.
type Term interface {
	String() string
	isTerm()
}

// Literal is a regular number.
type Literal int

// Pair is a snailfish pair of two terms.
type Pair struct {
	Left, Right Term
}

func (Literal) isTerm() {}
func (*Pair) isTerm()   {}

func (l Literal) String() string {
	return strconv.Itoa(int(l))
}

func (p *Pair) String() string {
	var sb strings.Builder
	writeTerm(&sb, p)
	return sb.String()
}

func writeTerm(sb *strings.Builder, t Term) {
	switch t := t.(type) {
	case Literal:
		sb.WriteString(strconv.Itoa(int(t)))
	case *Pair:
		sb.WriteByte('[')
		writeTerm(sb, t.Left)
		sb.WriteByte(',')
		writeTerm(sb, t.Right)
		sb.WriteByte(']')
	}
}

// Depth returns the nesting depth of a term. A literal has depth 0, a pair of
// two literals has depth 1.
func Depth(t Term) int {
	p, ok := t.(*Pair)
	if !ok || p == nil {
		return 0
	}
	return 1 + max(Depth(p.Left), Depth(p.Right))
}
