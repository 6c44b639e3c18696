package core

import (
	"fmt"

	"github.com/petermattis/goid"
)

// Tracker holds the two process-wide slots described in section 4.B:
// the sink currently recomputing (for auto-subscription on read) and
// the owner currently adopting new effects/cleanups. Both are saved and
// restored around every recompute and scope run, and are never exposed
// to user code.
//
// Section 5 states the scheduling model is single-threaded and
// cooperative: there is exactly one Tracker, not one per goroutine.
// recordedGID guards against the one mistake that model can't catch on
// its own: a node's recompute reading from a second goroutine mid-run,
// which would silently corrupt sourcesTail bookkeeping. This mirrors the
// teacher's shouldTrack/isSameGID check, narrowed from "which per-
// goroutine runtime do I own" to "is this still the goroutine that
// started the current recompute".
type Tracker struct {
	tracking bool

	activeSink  *Node
	activeOwner *Owner

	recordedGID int64
	hasActive   bool
}

func NewTracker() *Tracker {
	return &Tracker{tracking: true}
}

func (t *Tracker) ActiveSink() *Node   { return t.activeSink }
func (t *Tracker) ActiveOwner() *Owner { return t.activeOwner }
func (t *Tracker) IsTracking() bool    { return t.tracking }

// BeginSink installs node and owner (even a nil one) as active and records
// the current goroutine, returning a closure that restores the previous
// state. All three recompute sites (recomputeMemo, runEffect,
// recomputeTask) use this instead of a single wrapped closure, since
// each needs to interleave other work (deferred TrimSources, etc.)
// around the tracked call.
func (t *Tracker) BeginSink(node *Node, owner *Owner) func() {
	prevSink := t.activeSink
	prevOwner := t.activeOwner
	prevGID, prevHas := t.recordedGID, t.hasActive

	t.activeSink = node
	t.activeOwner = owner
	t.recordedGID = goid.Get()
	t.hasActive = true

	return func() {
		t.activeSink = prevSink
		t.activeOwner = prevOwner
		t.recordedGID, t.hasActive = prevGID, prevHas
	}
}

// RunWithOwner installs owner as the active owner (without an active
// sink) for the duration of fn, used by scope/owner Run.
func (t *Tracker) RunWithOwner(owner *Owner, fn func()) {
	prevSink := t.activeSink
	prevOwner := t.activeOwner

	t.activeSink = nil
	t.activeOwner = owner

	defer func() {
		t.activeSink = prevSink
		t.activeOwner = prevOwner
	}()

	fn()
}

// RunUntracked disables tracking for the duration of fn: reads inside
// fn do not link as dependencies of the active sink.
func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}

// Track links node as a source of the active sink, if tracking is on
// and a sink is active. A read reaching here from a goroutine other
// than the one running the active sink's recompute is a programming
// error (most likely a task's async phase reading a signal directly
// instead of through its tracked input phase) and panics rather than
// silently producing a wrong dependency graph.
func (t *Tracker) Track(node *Node) {
	if !t.tracking || t.activeSink == nil {
		return
	}
	if t.hasActive && goid.Get() != t.recordedGID {
		panic(fmt.Sprintf("reactive: %s node read from a different goroutine than the one driving its sink's recompute", node.kind))
	}
	Link(node, t.activeSink)
}
