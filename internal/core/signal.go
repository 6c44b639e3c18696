package core

// StateOptions configures a state or sensor source, mirroring section
// 6's option set.
type StateOptions struct {
	Equals  func(a, b any) bool
	Guard   func(any) bool
	Watched func(set func(any)) func()
}

// NewState constructs a state source node. initial must not be nil; if
// Guard is set it must accept initial.
func NewState(rt *Runtime, initial any, opts StateOptions) (*Node, error) {
	if initial == nil {
		return nil, &NullishSignalValueError{Kind: KindState}
	}
	if opts.Guard != nil && !opts.Guard(initial) {
		return nil, &InvalidSignalValueError{Kind: KindState, Value: initial}
	}

	n := NewNode(KindState)
	n.value = initial
	if opts.Equals != nil {
		n.equals = opts.Equals
	}
	n.guard = opts.Guard
	n.activate = opts.Watched
	return n, nil
}

// NewSensor constructs a sensor source node. start is invoked lazily on
// the first sink connection and must return a teardown.
func NewSensor(rt *Runtime, start func(set func(any)) func(), opts StateOptions) (*Node, error) {
	if start == nil {
		return nil, &InvalidCallbackError{Kind: KindSensor, Reason: "start must not be nil"}
	}

	n := NewNode(KindSensor)
	if opts.Equals != nil {
		n.equals = opts.Equals
	}
	n.guard = opts.Guard
	n.activate = start
	return n, nil
}

// Get reads a state/sensor node's current value, tracking it as a
// dependency of the active sink if one is running, per 4.I's uniform
// get semantics. Locked: a sensor's value can be overwritten by its
// start callback from outside the driving call stack (setFromActivation
// routes through Set, also locked), and a state read must never observe
// a half-committed task write to an unrelated node sharing the runtime.
func Get(rt *Runtime, node *Node) (any, error) {
	rt.Lock()
	defer rt.Unlock()

	rt.tracker.Track(node)
	if node.err != nil {
		return nil, node.err
	}
	return node.value, nil
}

// Set writes a new value to a state node (4.A's source write path).
// Writes that don't change the value (per Equals) are no-ops.
func Set(rt *Runtime, node *Node, v any) error {
	rt.Lock()
	defer rt.Unlock()

	if v == nil {
		return &NullishSignalValueError{Kind: node.kind}
	}
	if node.guard != nil && !node.guard(v) {
		return &InvalidSignalValueError{Kind: node.kind, Value: v}
	}

	if node.equals(node.value, v) {
		return nil
	}

	node.value = v
	node.err = nil
	Propagate(rt, node)
	rt.Schedule()
	return nil
}

// Update reads, applies fn, and writes back the result.
func Update(rt *Runtime, node *Node, fn func(any) any) error {
	if fn == nil {
		return &InvalidCallbackError{Kind: node.kind, Reason: "update function must not be nil"}
	}

	rt.Lock()
	prev := node.value
	rt.Unlock()

	return Set(rt, node, fn(prev))
}

// setFromActivation is the `set` callback passed into a sensor's start
// (or a watched state's hook). It writes through the normal Set path so
// a value pushed from outside a recompute still propagates and flushes.
func setFromActivation(node *Node, v any) {
	rt := defaultRuntime
	_ = Set(rt, node, v)
}
