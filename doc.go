/*
Package snailfish implements the arithmetic of snailfish numbers.

Snailfish Numbers

A snailfish number is a pair whose elements are either regular numbers
(non-negative integers) or snailfish numbers themselves:

	[[1,2],[[3,4],5]]

Numbers are stored in a flat, implicitly indexed binary tree (package flat),
not as a linked structure of nodes. The root pair lives at index 0, the
children of the pair at index i live at 2i+1 and 2i+2.

Reduction

A snailfish number is reduced by repeatedly applying the first rule which
fires, in this order:

1. Explode: if a pair is nested inside four pairs, the leftmost such pair
explodes. Its left value is added to the first regular number to its left (if
any), its right value to the first regular number to its right (if any), and
the pair is replaced by the regular number 0.

2. Split: if a regular number is 10 or greater, the leftmost such number
splits into a pair of its half, rounded down, and its half, rounded up.

Reduction stops as soon as no rule fires. Adding two numbers forms the pair of
both and reduces it. The magnitude of a number is 3 times the magnitude of its
left element plus 2 times the magnitude of its right element; the magnitude of
a regular number is the number itself.

	a := snailfish.MustParse("[[[[4,3],4],4],[7,[[8,4],9]]]")
	b := snailfish.MustParse("[1,1]")
	sum, _ := snailfish.Add(a, b)
	fmt.Println(sum)             // [[[[0,7],4],[[7,8],[6,0]]],[8,1]]
	fmt.Println(sum.Magnitude()) // 1384

Numbers are not safe for concurrent mutation. Operations which process
numbers concurrently, like MaxPairMagnitude, work on private copies.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package snailfish

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SnailError is an error type for the snailfish module
type SnailError string

func (e SnailError) Error() string {
	return string(e)
}

// ErrStructure is flagged (by panicking) whenever a rewrite rule is applied to
// a position which does not have the required shape. It signals a bug in the
// detection of reduction triggers.
const ErrStructure = SnailError("structural violation")

// ErrNoConvergence is returned if a reduction does not reach its fixpoint
// within the configured number of steps.
const ErrNoConvergence = SnailError("reduction does not converge")

// ErrNoNumbers is returned by operations which need more numbers than they
// were given.
const ErrNoNumbers = SnailError("not enough snailfish numbers")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SnailError("illegal arguments")
