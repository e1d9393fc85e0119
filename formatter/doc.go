/*
Package formatter renders snailfish numbers on output devices.

Numbers are printed in bracket notation, decorated to make their structure
visible: on a console, brackets and regular numbers are coloured by nesting
depth, and the pair which is about to explode as well as the regular number
which is about to split are highlighted. The HTML format produces nested
span elements with CSS classes for the same purpose.

Formatting is driven by Output, which walks the number and calls a Format
for every token. Clients may provide their own formats.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
