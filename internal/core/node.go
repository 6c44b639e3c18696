package core

import "context"

// NodeKind discriminates the five node flavors described by the data
// model. Dispatch in propagate/refresh switches on this instead of
// type-asserting embedded structs, so every switch stays exhaustive and
// auditable: adding a kind is a compile error at every switch until
// handled.
type NodeKind uint8

const (
	KindState NodeKind = iota
	KindSensor
	KindMemo
	KindTask
	KindEffect
)

func (k NodeKind) String() string {
	switch k {
	case KindState:
		return "state"
	case KindSensor:
		return "sensor"
	case KindMemo:
		return "memo"
	case KindTask:
		return "task"
	case KindEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// Flags tracks a node's staleness level plus the orthogonal Running and
// Queued bits. Clean is the zero value.
type Flags uint8

const (
	FlagCheck Flags = 1 << iota
	FlagDirty
	FlagRunning
	FlagQueued // already sitting in the effect queue this flush cycle
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// Edge is an intrusive dependency edge. It belongs to exactly two lists
// at once: the source's sink list (doubly linked, so disconnecting a
// sensor/state's last sink is O(1)) and the sink's source list (singly
// linked forward, walked in order during recompute and diffed against
// the freshly captured sequence).
type Edge struct {
	source *Node
	sink   *Node

	prevSink *Edge // source's sink list
	nextSink *Edge

	nextSource *Edge // sink's source list, forward only
}

// Node is the tagged-variant shape backing state, sensor, memo, task and
// effect handles. Fields not meaningful for a given Kind are left zero;
// the root package's factories only populate what their kind needs.
type Node struct {
	kind  NodeKind
	flags Flags

	value any
	err   error

	equals func(a, b any) bool
	guard  func(any) bool

	// memo/task
	computeFn func(prev any) any
	asyncFn   func(ctx context.Context, prev any) (any, error)

	// effect
	effectFn func() func()

	// state/sensor activation hook: `watched` for state, `start` for
	// sensor. Invoked when sinks transitions 0->1; its return value is
	// stored in deactivate and invoked on the 1->0 transition.
	activate   func(set func(any)) func()
	deactivate func()

	// task
	cancel context.CancelFunc

	owner *Owner // effect only: its cleanup/child scope; nil for memo/task

	sinksHead, sinksTail *Edge // doubly linked, this node as source
	sourcesHead          *Edge // singly linked, this node as sink
	sourcesTail          *Edge // recompute cursor, nil before/at start of recompute

	sinkCount int
}

// NewNode constructs a bare node of the given kind. Callers finish
// wiring the kind-specific fields.
func NewNode(kind NodeKind) *Node {
	return &Node{kind: kind, equals: defaultEquals}
}

func defaultEquals(a, b any) bool { return a == b }

func (n *Node) HasFlag(f Flags) bool { return n.flags.has(f) }
func (n *Node) AddFlag(f Flags)      { n.flags |= f }
func (n *Node) RemoveFlag(f Flags)   { n.flags &^= f }
func (n *Node) SetFlags(f Flags)     { n.flags = f }
func (n *Node) Kind() NodeKind       { return n.kind }

// IsSink reports whether the kind ever appears on the sink side of an
// edge (memo, task, effect).
func (n *Node) IsSink() bool {
	return n.kind == KindMemo || n.kind == KindTask || n.kind == KindEffect
}

// Link records that sink read dep during its current recompute, per
// section 4.A:
//  1. if dep is already the last captured read, do nothing (invariant 5);
//  2. if the edge right after the cursor already points at dep, the
//     previous generation's edge is reusable (the Running bit is not
//     checked: Link is reached through Tracker.Track, whose active sink
//     is always mid-recompute);
//  3. otherwise allocate, append to dep's sink list, append to sink's
//     source list after the cursor, and advance the cursor.
func Link(dep *Node, sink *Node) {
	if sink.sourcesTail != nil && sink.sourcesTail.source == dep {
		return
	}

	var candidate *Edge
	if sink.sourcesTail != nil {
		candidate = sink.sourcesTail.nextSource
	} else {
		candidate = sink.sourcesHead
	}
	if candidate != nil && candidate.source == dep {
		sink.sourcesTail = candidate
		return
	}

	edge := &Edge{source: dep, sink: sink}
	dep.appendSinkEdge(edge)
	sink.insertSourceEdgeAfterCursor(edge)
	sink.sourcesTail = edge

	dep.sinkCount++
	if dep.sinkCount == 1 {
		dep.runActivate()
	}
}

func (n *Node) appendSinkEdge(e *Edge) {
	if n.sinksHead == nil {
		n.sinksHead = e
		n.sinksTail = e
		return
	}
	n.sinksTail.nextSink = e
	e.prevSink = n.sinksTail
	n.sinksTail = e
}

func (n *Node) removeSinkEdge(e *Edge) {
	if e.prevSink != nil {
		e.prevSink.nextSink = e.nextSink
	} else {
		n.sinksHead = e.nextSink
	}
	if e.nextSink != nil {
		e.nextSink.prevSink = e.prevSink
	} else {
		n.sinksTail = e.prevSink
	}
	e.prevSink, e.nextSink = nil, nil

	n.sinkCount--
	if n.sinkCount == 0 {
		n.runDeactivate()
	}
}

// insertSourceEdgeAfterCursor splices e into the source list immediately
// after sourcesTail (or at the head, if recompute hasn't captured any
// reads yet), per invariant 2/3: new reads belong right after the
// cursor, not at the physical end, since edges past the cursor from the
// previous generation haven't been trimmed yet.
func (n *Node) insertSourceEdgeAfterCursor(e *Edge) {
	if n.sourcesTail == nil {
		e.nextSource = n.sourcesHead
		n.sourcesHead = e
		return
	}
	e.nextSource = n.sourcesTail.nextSource
	n.sourcesTail.nextSource = e
}

// TrimSources unlinks every source edge past the recompute cursor, per
// invariant 3. Called after a full recompute.
func (n *Node) TrimSources() {
	var start *Edge
	if n.sourcesTail != nil {
		start = n.sourcesTail.nextSource
		n.sourcesTail.nextSource = nil
	} else {
		start = n.sourcesHead
		n.sourcesHead = nil
	}

	for e := start; e != nil; {
		next := e.nextSource
		e.source.removeSinkEdge(e)
		e = next
	}
}

// ClearSources unlinks every source edge unconditionally. Used on
// dispose, where there is no new generation to diff against.
func (n *Node) ClearSources() {
	n.sourcesTail = nil
	n.TrimSources()
}

// Sources iterates this node's current source edges in order.
func (n *Node) Sources(yield func(*Node) bool) {
	for e := n.sourcesHead; e != nil; e = e.nextSource {
		if !yield(e.source) {
			return
		}
	}
}

// Sinks iterates this node's current sink edges in order.
func (n *Node) Sinks(yield func(*Node) bool) {
	for e := n.sinksHead; e != nil; e = e.nextSink {
		if !yield(e.sink) {
			return
		}
	}
}

func (n *Node) runActivate() {
	if n.activate == nil {
		return
	}
	n.deactivate = n.activate(func(v any) { setFromActivation(n, v) })
}

func (n *Node) runDeactivate() {
	if n.deactivate == nil {
		return
	}
	stop := n.deactivate
	n.deactivate = nil
	stop()
}
