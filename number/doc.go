/*
Package number parses snailfish numbers from their bracket notation.

A snailfish number is either a regular number (a non-negative integer literal)
or a pair of two snailfish numbers:

	Number  := Literal | Pair
	Literal := digit { digit }
	Pair    := "[" Number "," Number "]"

Spaces and tabs are tolerated around every token. The parser produces a
recursive Term, which is consumed once to build a flat tree and then
discarded.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package number

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
