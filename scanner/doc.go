/*
Package scanner implements the lexical phase of the matrix expression
language as an automaton which advances one micro-step at a time.

Single-character tokens are produced in one step. Numeric literals run
through two classical recognizer styles in sequence: first a
Thompson-style NFA collects the digits (construction), then a DFA
re-reads the collected text (verification). Both passes are observable
through the lexer's State, which is one of Idle, BuildingNumber or
VerifyingNumber.

Batch is a reference scanner for the same token set, compiled by
lexmachine either as an NFA or as a DFA. It produces a complete token
sequence in one call and is used to cross-check the stepwise lexer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mstep.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("mstep.scanner")
}
