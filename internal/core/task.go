package core

import "context"

// recomputeTask implements the async lifecycle from section 4.H. A task
// has two phases: a synchronous input phase, tracked exactly like a
// memo recompute (computeFn runs under the fresh tracking generation, so
// it may read signals and gets re-run whenever they change), and an
// asynchronous resolution phase (asyncFn), which runs on its own
// goroutine and is not tracked; it receives a ctx instead, cancelled
// the moment a newer run supersedes it or a dependency changes again
// before it resolves.
func recomputeTask(rt *Runtime, node *Node) {
	if node.cancel != nil {
		rt.logger.Debug("cancelling superseded task run", "kind", node.kind.String())
		node.cancel()
		node.cancel = nil
	}

	restore := rt.tracker.BeginSink(node, rt.tracker.activeOwner)
	node.sourcesTail = nil
	node.AddFlag(FlagRunning)

	var input any
	var inputErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				inputErr = panicToError(r)
			}
		}()
		if node.computeFn != nil {
			input = node.computeFn(node.value)
		}
	}()

	restore()
	node.TrimSources()
	node.RemoveFlag(FlagRunning)

	if inputErr != nil {
		node.err = inputErr
		rt.logger.Warn("task input compute error", "error", inputErr)
		upgradeCheckSinks(node)
		return
	}

	if node.asyncFn == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	node.cancel = cancel

	// Clean immediately: the task is considered settled from the graph's
	// point of view the instant it's launched. Its resolution later
	// writes node.value directly and reschedules a flush, same as any
	// other source write (4.H). The goroutine below is the one piece of
	// this engine that runs on a thread other than whichever is driving
	// the graph at call time; it commits under the runtime lock (lock.go)
	// so that write can never interleave with a concurrent Get/Set/Flush.
	// Supersession needs no separate token: cancel is specific to this
	// generation's ctx, so a newer recomputeTask call (or AbortTask)
	// cancelling the old controller is exactly what makes this ctx.Err()
	// non-nil, checked once as soon as asyncFn returns and again after the
	// lock is held, since a cancellation racing the goroutine's own check would
	// otherwise slip through the gap between the two.
	go func() {
		value, err := node.asyncFn(ctx, input)
		if ctx.Err() != nil {
			rt.logger.Debug("dropping result from cancelled/superseded task run")
			return
		}

		rt.Lock()
		defer rt.Unlock()

		if ctx.Err() != nil {
			rt.logger.Debug("dropping result from cancelled/superseded task run")
			return
		}

		node.cancel = nil

		if err == nil && node.guard != nil && !node.guard(value) {
			err = &InvalidSignalValueError{Kind: node.kind, Value: value}
		}

		changed := false
		if err != nil {
			if node.err == nil || node.err.Error() != err.Error() {
				changed = true
			}
			node.err = err
			rt.logger.Debug("task rejected", "error", err)
		} else {
			if node.err != nil || !node.equals(node.value, value) {
				changed = true
			}
			node.value = value
			node.err = nil
		}

		if changed {
			Propagate(rt, node)
		}
		rt.Schedule()
	}()
}

// IsTaskPending reports whether a task has an in-flight async run that
// hasn't resolved yet.
func IsTaskPending(rt *Runtime, node *Node) bool {
	rt.Lock()
	defer rt.Unlock()
	return node.cancel != nil
}

// AbortTask cancels a task's in-flight run, if any, without scheduling a
// replacement: the task stays at its last committed value/error until
// the next read, which finds it Dirty and starts a fresh run (4.H).
func AbortTask(rt *Runtime, node *Node) {
	rt.Lock()
	defer rt.Unlock()

	if node.cancel == nil {
		return
	}
	node.cancel()
	node.cancel = nil
	node.AddFlag(FlagDirty)
}
