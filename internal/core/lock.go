package core

import (
	"sync"

	"github.com/petermattis/goid"
)

// runtimeLock serializes every graph mutation onto one logical turn at a
// time, the Go stand-in for section 5's single-threaded cooperative
// scheduling model. A plain sync.Mutex can't express it: the driving
// goroutine re-enters its own public entry points constantly: a memo's
// fn reading a signal calls back into Get from inside Read's own call
// stack, so the lock has to be reentrant for whichever goroutine
// already holds it, while still excluding every other goroutine outright.
// The one other goroutine in this engine is a task's asyncFn committing
// its result outside the driving call stack (4.H); that commit must not
// interleave with whatever the driving goroutine is doing to the same
// nodes at that instant.
//
// This reuses the goid-keyed reentrancy check tracking.go already
// applies to Tracker.Track (see SPEC_FULL.md section 5), extended from
// "reject a foreign goroutine" to "serialize against a foreign
// goroutine": the same goid primitive, repurposed from "is this call
// allowed" to "is the big lock already mine".
type runtimeLock struct {
	mu    sync.Mutex
	cond  *sync.Cond
	owner int64
	held  bool
	depth int
}

func newRuntimeLock() *runtimeLock {
	l := &runtimeLock{}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Lock acquires the lock. A goroutine that already holds it (recognized
// by goid) just increments the hold count; any other goroutine blocks
// until the holder's outermost Unlock releases it.
func (l *runtimeLock) Lock() {
	gid := goid.Get()

	l.mu.Lock()
	defer l.mu.Unlock()

	for l.held && l.owner != gid {
		l.cond.Wait()
	}
	l.owner = gid
	l.held = true
	l.depth++
}

// Unlock releases one level of the current goroutine's hold; the lock
// only actually becomes free, waking a blocked goroutine, once depth
// returns to zero.
func (l *runtimeLock) Unlock() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.depth--
	if l.depth == 0 {
		l.held = false
		l.cond.Signal()
	}
}
