// Package cli implements the mstep command line interface.
//
// Without an expression, or with flag -i, mstep starts an interactive
// session in a terminal REPL. Within a session an expression is loaded and
// then advanced step by step, displaying the lexer, token stream, parse
// stack and execution trace after every step.
//
// With an expression (flag -e) mstep runs the analysis to completion and
// prints the execution trace, either as a table or as a YAML document
// (flag --format).
//
// Sub-command watch shows a run in a full-screen terminal view, advancing it
// on key press or playing it back at a configurable pace.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mstep.cli'
func tracer() tracing.Trace {
	return tracing.Select("mstep.cli")
}
