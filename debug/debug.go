// Package debug builds the diagnostics logger from the environment.
//
// GPROJ_LOG enables logging to stderr; GPROJ_LOG_LEVEL selects the level
// (trace, debug, info, warn, error), warn by default.  GPROJ_LOG_JSON
// switches to JSON lines.
package debug

import (
	"io"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
)

type debug struct {
	Log   bool
	JSON  bool
	Level hclog.Level
}

var d *debug

func init() {
	d = load()
}

func load() *debug {
	res := &debug{
		Log:   boolEnv("GPROJ_LOG"),
		JSON:  boolEnv("GPROJ_LOG_JSON"),
		Level: hclog.Warn,
	}
	if lvl := hclog.LevelFromString(os.Getenv("GPROJ_LOG_LEVEL")); lvl != hclog.NoLevel {
		res.Level = lvl
	}
	return res
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Enabled() bool {
	return d.Log
}

// Logger returns a logger named gproj writing to stderr when logging is
// enabled, and a null logger otherwise.
func Logger() hclog.Logger {
	if !d.Log {
		return hclog.NewNullLogger()
	}
	return newLogger(os.Stderr, d)
}

func newLogger(w io.Writer, d *debug) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "gproj",
		Level:      d.Level,
		Output:     w,
		JSONFormat: d.JSON,
	})
}
