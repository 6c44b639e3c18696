package reactive

import (
	"github.com/hashicorp/go-hclog"

	"github.com/nodal/reactive/internal/core"
)

// SetLogger overrides the package-wide logger, grounded on maya's
// internal/logger env-var init pattern but exposed for callers who want
// to route this library's diagnostics into their own hclog setup
// instead of the REACTIVE_LOG_LEVEL-driven default.
func SetLogger(logger hclog.Logger) {
	core.DefaultRuntime().SetLogger(logger)
}

// Batch runs fn with flush deferred until the outermost Batch call
// closes. Writes still propagate immediately inside fn; only effect
// execution is delayed.
func Batch(fn func()) {
	core.Batch(core.DefaultRuntime(), fn)
}

// OnFlushed registers fn to run once, the next time a flush fully
// drains its effect queue.
func OnFlushed(fn func()) {
	core.DefaultRuntime().OnFlushed(fn)
}
