/*
Package engine drives the analysis of a matrix expression, one externally
visible transition per call to Advance.

While the lexing phase is incomplete, the engine either advances the
lexer by one micro-step or moves a recognized token into the token
stream. After the end of input has been tokenized, the engine runs a
predictive derivation on an explicit stack of grammar symbols, performing
exactly one terminal match or one nonterminal expansion per step.

Terminal matches are subject to shape validation: every row needs at least
two numbers, all rows of an operand must have the same length, and the
rows of the right operand must have the length of the rows of the left
operand. The first failure locks the engine. Every step is recorded in a
history log.

Engines are caller-owned and not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mstep.engine'.
func tracer() tracing.Trace {
	return tracing.Select("mstep.engine")
}
