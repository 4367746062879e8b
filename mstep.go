/*
Package mstep is a step simulator for the lexical and syntactic analysis of
a small matrix expression language.

Input expressions combine bracketed vectors and matrices with '+', '-'
and '*', e.g.

	[10,20] + [30,40]
	[[1,2],[3,4]] * [[5,6],[7,8]]

Sub-package scanner implements a character driven automaton for the
lexical phase, package engine a stack driven predictive parser which
validates matrix shapes while deriving the input. Both expose their
progress one atomic transition at a time, so that a driver (see
mstep/ui/termui) is able to display every intermediate state.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mstep

import (
	"context"
	"os"

	"github.com/knadh/koanf"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

// Exit exits the application with errcode.
func Exit(errcode int) {
	os.Exit(errcode)
}
