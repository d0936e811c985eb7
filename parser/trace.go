package parser

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer. Clients replace gtrace.CoreTracer
// to redirect output; tests install a testing adapter.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
