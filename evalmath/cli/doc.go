package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'evalmath.cli'
func tracer() tracing.Trace {
	return tracing.Select("evalmath.cli")
}
