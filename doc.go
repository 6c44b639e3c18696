// Package reactive is a generic, single-threaded reactive dependency
// graph: mutable sources (state, sensor), derived values (memo, task),
// and effects, wired together by automatic dependency tracking and
// flushed through one process-wide scheduler.
//
// Every read and write of the graph is serialized under one runtime
// lock; the only work run on another goroutine is a task's async phase,
// whose result is committed under that same lock. See internal/core for
// the engine this package wraps with typed handles.
package reactive
