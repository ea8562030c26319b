package cli

import (
	"path/filepath"
	"strings"
)

// AppPaths determines application specific paths for configuration and
// logging.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	return appHome(appTag)
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

// traceDestination turns the name of a trace destination into a URL.
// Names without a scheme denote files; relative file names are located in
// the log directory of paths.
func traceDestination(dest string, paths AppPaths) string {
	switch {
	case dest == "" || dest == "stderr" || strings.Contains(dest, ":/"):
		return dest
	case filepath.IsAbs(dest) || paths == nil || paths.LogDir() == "":
		return "file://" + dest
	}
	return "file://" + filepath.Join(paths.LogDir(), dest)
}
