/*
Package textfile loads snailfish homework files, one number per line.

Blank lines are skipped. Every other line has to hold a single snailfish
number in bracket notation; the first malformed line stops loading with an
error carrying the line number.

A Loader broadcasts its progress to any number of subscribers, e.g. for a
progress display in a command-line tool.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'snailfish'
func tracer() tracing.Trace {
	return tracing.Select("snailfish")
}
