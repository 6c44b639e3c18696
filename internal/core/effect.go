package core

// NewEffect builds a node that re-runs fn whenever any of the signals it
// reads change, enqueued on the shared effect FIFO rather than run
// inline (4.E). Its owner scopes both fn's own OnCleanup registrations
// and the teardown fn itself returns.
func NewEffect(rt *Runtime, parent *Owner, fn func() func()) *Node {
	rt.Lock()
	defer rt.Unlock()

	n := NewNode(KindEffect)
	n.owner = NewOwner(parent)
	n.effectFn = fn
	n.AddFlag(FlagDirty)
	rt.queue.Enqueue(n)
	return n
}

// DisposeEffect stops an effect permanently: runs its owner's cleanups,
// detaches it from every source it currently reads, and clears effectFn
// and the Dirty/Queued flags so a dispose that lands before the effect's
// first scheduled flush (created and disposed inside the same Batch, or
// any other deferred-flush window) leaves it inert in the queue instead
// of running once more when Drain reaches it, per spec.md section 3's
// "disposal ... clears fn" and section 8's no-redundant-run guarantee.
func DisposeEffect(rt *Runtime, n *Node) {
	rt.Lock()
	defer rt.Unlock()

	if n.owner != nil {
		n.owner.Dispose()
	}
	n.ClearSources()
	n.effectFn = nil
	n.RemoveFlag(FlagDirty | FlagQueued)
}
