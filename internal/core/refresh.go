package core

// Read is the uniform read path for memo and task nodes (4.I): track the
// node as a dependency of whichever sink is currently active, then
// refresh it if it might be stale, then surface a stored error. Locked
// for its whole body: a
// task's recompute launches a goroutine that later commits directly
// into this same node, and refresh's cycle/dirty bookkeeping must not
// interleave with that commit.
func Read(rt *Runtime, node *Node) (any, error) {
	rt.Lock()
	defer rt.Unlock()

	rt.tracker.Track(node)
	if err := Refresh(rt, node); err != nil {
		return nil, err
	}
	if node.err != nil {
		return nil, node.err
	}
	return node.value, nil
}

// Refresh implements the pull side of the engine (section 4.D): walk
// still-uncertain upstream sources first, detect reentrant cycles, then
// recompute if the node actually turned out to be dirty.
func Refresh(rt *Runtime, node *Node) error {
	if node.HasFlag(FlagCheck) {
		for src := range node.Sources {
			if !src.IsSink() {
				continue // state/sensor sources have nothing to refresh
			}
			if err := Refresh(rt, src); err != nil {
				return err
			}
			if node.HasFlag(FlagDirty) {
				break // an upstream source actually changed; no need to keep checking
			}
		}
	}

	if node.HasFlag(FlagRunning) {
		err := &CircularDependencyError{Kind: node.kind}
		rt.logger.Error("cycle detected", "kind", node.kind.String())
		return err
	}

	if node.HasFlag(FlagDirty) {
		switch node.kind {
		case KindMemo:
			recomputeMemo(rt, node)
		case KindTask:
			recomputeTask(rt, node)
		case KindEffect:
			runEffect(rt, node)
		}
	}

	node.SetFlags(0)
	return nil
}

// recomputeMemo evaluates a memo's fn under a fresh tracking generation
// and commits the result if it differs (or if the memo previously held
// an error), per 4.D.
func recomputeMemo(rt *Runtime, node *Node) {
	// Only activeSink changes for a memo recompute: memo nodes don't
	// carry an owner of their own (section 3's memo shape has no
	// cleanup field), so nested OnCleanup calls still attach to
	// whichever effect/scope is already active, per 4.D.
	restore := rt.tracker.BeginSink(node, rt.tracker.activeOwner)

	node.sourcesTail = nil
	node.AddFlag(FlagRunning)

	changed := false
	var next any
	var computeErr error

	func() {
		defer func() {
			if r := recover(); r != nil {
				computeErr = panicToError(r)
			}
		}()
		next = node.computeFn(node.value)
	}()

	restore()

	if computeErr == nil && node.guard != nil && !node.guard(next) {
		computeErr = &InvalidSignalValueError{Kind: node.kind, Value: next}
	}

	if computeErr != nil {
		if node.err == nil || node.err.Error() != computeErr.Error() {
			changed = true
		}
		node.err = computeErr
		rt.logger.Warn("memo compute error", "error", computeErr)
	} else {
		if node.err != nil || !node.equals(node.value, next) {
			changed = true
		}
		node.value = next
		node.err = nil
	}

	node.TrimSources()
	node.RemoveFlag(FlagRunning)

	if changed {
		upgradeCheckSinks(node)
	}
}

// upgradeCheckSinks promotes direct sinks still sitting at Check (no
// definite staleness yet) to Check|Dirty, now that this node is known
// to have actually changed. This is the narrower walk 4.D describes in
// place of a full Propagate from here.
func upgradeCheckSinks(node *Node) {
	for sink := range node.Sinks {
		if sink.HasFlag(FlagCheck) {
			sink.AddFlag(FlagDirty)
		}
	}
}

// runEffect runs prior cleanup, evaluates fn under a fresh tracking
// generation, and registers its return value (if a func) as the next
// cleanup, per 4.D. A disposed effect has its effectFn cleared and is a
// no-op here even if it somehow still reaches Drain with Dirty set.
func runEffect(rt *Runtime, node *Node) {
	if node.effectFn == nil {
		return
	}

	if node.owner != nil {
		node.owner.Reset()
	}

	restore := rt.tracker.BeginSink(node, node.owner)

	node.sourcesTail = nil
	node.AddFlag(FlagRunning)

	defer func() {
		restore()
		node.TrimSources()
		node.RemoveFlag(FlagRunning)
	}()

	var cleanup func()
	run := func() { cleanup = node.effectFn() }
	if node.owner != nil {
		node.owner.RunBody(run)
	} else {
		run()
	}
	if cleanup != nil && node.owner != nil {
		node.owner.OnCleanup(cleanup)
	}
}

func panicToError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &recoveredPanic{value: r}
}

type recoveredPanic struct{ value any }

func (p *recoveredPanic) Error() string {
	return formatRecovered(p.value)
}

func formatRecovered(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return "panic: non-error value recovered"
}
