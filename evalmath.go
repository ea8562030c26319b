package evalmath

import (
	"context"
	"os"

	"github.com/knadh/koanf"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context

// Exit exits the application with an error code.
func Exit(errcode int) {
	os.Exit(errcode)
}

// Precision returns the configured number of decimal places for printing
// results, or def if nothing has been configured.
func Precision(def int) int {
	if Configuration == nil || !Configuration.Exists("precision") {
		return def
	}
	if p := Configuration.Int("precision"); p >= 0 {
		return p
	}
	return def
}
