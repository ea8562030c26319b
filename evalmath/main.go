// Command evalmath evaluates arithmetic expressions, either given on the
// command line or typed into an interactive REPL.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/cpiber/EvalMath"
	"github.com/cpiber/EvalMath/evalmath/cli"
)

func main() {
	var stop context.CancelFunc
	evalmath.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Execute()
}
