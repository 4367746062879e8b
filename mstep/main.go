// Command mstep steps through the lexical and syntactic analysis of matrix
// expressions.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/mstep"
	"github.com/npillmayer/mstep/mstep/cli"
)

func main() {
	var stop context.CancelFunc
	mstep.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Execute()
}
