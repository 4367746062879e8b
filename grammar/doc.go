/*
Package grammar defines the vocabulary of the matrix expression language:
token types, the classification of single input characters, grammar
symbols and the fixed set of productions.

The grammar is used for a predictive, stack driven derivation. For every
pair of nonterminal and lookahead token there is at most one applicable
production:

	S       → M OP M
	OP      → '+' | '-' | '*'
	M       → Core S_OPT
	S_OPT   → 'num' | ε
	Core    → '[' Inside ']'
	Inside  → RowList | NumList
	RowList → Row RowTail
	Row     → '[' NumList ']'
	RowTail → ',' RowList | ε
	NumList → 'num' NumTail
	NumTail → ',' NumList | ε

S_OPT admits a bare number directly after a closed operand. No semantic
meaning is attached to it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mstep.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("mstep.grammar")
}
