package reactive

import "github.com/nodal/reactive/internal/core"

// CreateEffect runs fn once immediately (deferred only if called inside
// an open Batch or an ongoing flush) and thereafter on every flush
// cycle where it is Dirty. If fn returns a non-nil cleanup, it runs
// immediately before the next re-run and on disposal. Returns a
// disposer that tears the effect down permanently. If called from
// inside another owner (a scope or a running effect), the disposer is
// also pushed onto that owner's cleanups, cascading teardown (4.G).
func CreateEffect(fn func() func()) func() {
	rt := core.DefaultRuntime()
	parent := rt.CurrentOwner()
	node := core.NewEffect(rt, parent, fn)
	rt.Schedule()

	dispose := func() {
		core.DisposeEffect(rt, node)
	}
	if parent != nil {
		parent.OnCleanup(dispose)
	}
	return dispose
}
