package core

// Propagate walks the outgoing edges of a source whose value just
// changed, per section 4.C. Direct sinks are marked at the Dirty level;
// recursion into their own sinks uses Check, since only the write's
// direct sinks are known to be stale; everything deeper merely has an
// ancestor that changed and must verify on refresh.
func Propagate(rt *Runtime, source *Node) {
	for sink := range source.Sinks {
		propagateLevel(rt, sink, FlagDirty)
	}
}

func propagateLevel(rt *Runtime, sink *Node, level Flags) {
	if sink.kind == KindEffect {
		if sink.HasFlag(FlagDirty) {
			return
		}
		sink.AddFlag(FlagDirty)
		rt.queue.Enqueue(sink)
		return
	}

	// memo or task: early exit once the flags already encode the
	// requested level, which keeps diamond-shaped graphs from being
	// walked more than once per level.
	if sink.HasFlag(level) {
		return
	}
	sink.AddFlag(level)

	if sink.kind == KindTask && sink.cancel != nil {
		rt.logger.Debug("aborting task on upstream change", "reason", "propagate")
		sink.cancel()
		sink.cancel = nil
	}

	for next := range sink.Sinks {
		propagateLevel(rt, next, FlagCheck)
	}
}
