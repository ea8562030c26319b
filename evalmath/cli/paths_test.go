package cli

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

type fixedPaths string

func (p fixedPaths) ConfigDir() string { return string(p) }
func (p fixedPaths) LogDir() string    { return string(p) }

func TestTraceDestination(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.cli")
	defer teardown()
	//
	logs := fixedPaths("/var/log/evalmath")
	assert.Equal(t, "stderr", traceDestination("stderr", logs))
	assert.Equal(t, "file:///tmp/x.log", traceDestination("file:///tmp/x.log", logs))
	assert.Equal(t, "file:///tmp/x.log", traceDestination("/tmp/x.log", logs))
	assert.Equal(t, "file:///var/log/evalmath/trace.log", traceDestination("trace.log", logs))
	assert.Equal(t, "file://trace.log", traceDestination("trace.log", fixedPaths("")))
}

func TestDefaultAppPaths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.cli")
	defer teardown()
	//
	paths, _ := DefaultAppPaths("EVALMATH")
	assert.NotNil(t, paths)
	assert.NotEmpty(t, paths.LogDir())
}
