package core

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// defaultLogger builds the runtime's structured logger per SPEC_FULL.md
// section 9: hclog, level driven by REACTIVE_LOG_LEVEL, defaulting to
// Warn so a normal embedding app sees compute errors and scheduler-level
// problems (infinite loops, cycles) but not routine debug chatter.
func defaultLogger() hclog.Logger {
	level := hclog.Warn
	if v := os.Getenv("REACTIVE_LOG_LEVEL"); v != "" {
		level = hclog.LevelFromString(v)
		if level == hclog.NoLevel {
			level = hclog.Warn
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:  "reactive",
		Level: level,
	})
}
