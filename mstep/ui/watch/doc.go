/*
Package watch shows a run of the analysis engine in a full-screen terminal
view, similar to an animation: the expression being edited, the lexer with
its current micro-state, the token stream, the parse stack, and the
execution trace. A run may be advanced step by step or played back at a
configurable pace.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package watch

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mstep.watch'
func tracer() tracing.Trace {
	return tracing.Select("mstep.watch")
}
