package formatter

import (
	"errors"
	"io"
	"os"

	"github.com/npillmayer/snailfish"
	"github.com/npillmayer/snailfish/flat"
)

// ErrIllegalArguments is returned for nil arguments.
var ErrIllegalArguments = errors.New("formatter: illegal argument: nil")

// Mark flags a token which takes part in the next reduction step.
type Mark uint8

// Marks for tokens.
const (
	Unmarked  Mark = iota
	Exploding      // pair which explodes next
	Splitting      // regular number which splits next
)

// Format is an interface for formatting drivers, given an io.Writer.
//
// Output calls Preamble once, then the token methods in bracket notation
// order, then Postamble.
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	OpenPair(depth int, mark Mark, w io.Writer)
	ClosePair(depth int, mark Mark, w io.Writer)
	Separator(w io.Writer)
	Regular(value int, depth int, mark Mark, w io.Writer)
}

// Output formats a snailfish number using a given format.
//
// Neither of the arguments may be nil. Tokens are emitted in the same way
// as (*snailfish.Number).String renders them.
func Output(n *snailfish.Number, out io.Writer, format Format) error {
	if n == nil || out == nil || format == nil {
		return ErrIllegalArguments
	}
	d := driver{
		tree:   n.Tree(),
		out:    out,
		format: format,
		pair:   -1,
		split:  -1,
	}
	if p, ok := n.ExplodeTrigger(); ok {
		d.pair = p
	}
	if i, ok := n.SplitTrigger(); ok {
		d.split = i
	}
	T().Debugf("formatter: output of %v, exploding=%d, splitting=%d", n, d.pair, d.split)
	format.Preamble(out)
	d.node(0)
	format.Postamble(out)
	if f, ok := format.(interface{ Err() error }); ok {
		return f.Err()
	}
	return nil
}

// Print outputs a number to stdout, using a console format configured from
// the current terminal.
func Print(n *snailfish.Number) error {
	return Output(n, os.Stdout, NewConsole(ConfigFromTerminal(), nil))
}

// driver walks a tree and calls the format for every token.
type driver struct {
	tree   *flat.Tree
	out    io.Writer
	format Format
	pair   int // index of exploding pair or -1
	split  int // index of splitting regular number or -1
}

func (d *driver) node(i int) {
	depth := flat.Depth(i)
	if n := d.tree.At(i); n.Literal {
		d.format.Regular(n.Value, depth, d.mark(i, d.split, Splitting), d.out)
		return
	}
	l, r := flat.LeftIndex(i), flat.RightIndex(i)
	left, right := d.renders(l), d.renders(r)
	if !left && !right {
		return
	}
	mark := d.mark(i, d.pair, Exploding)
	d.format.OpenPair(depth, mark, d.out)
	if left {
		d.node(l)
	}
	if left && right {
		d.format.Separator(d.out)
	}
	if right {
		d.node(r)
	}
	d.format.ClosePair(depth, mark, d.out)
}

// renders reports whether the subtree at i produces any output, i.e. holds
// a regular number.
func (d *driver) renders(i int) bool {
	if i >= d.tree.Len() {
		return false
	}
	if d.tree.At(i).Literal {
		return true
	}
	return d.renders(flat.LeftIndex(i)) || d.renders(flat.RightIndex(i))
}

func (d *driver) mark(i, marked int, m Mark) Mark {
	if i == marked {
		return m
	}
	return Unmarked
}
