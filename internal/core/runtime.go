package core

import (
	"github.com/hashicorp/go-hclog"
)

// Runtime bundles the process-wide state described in section 5: the
// tracking context, the batch depth counter, the effect FIFO, and the
// flush reentrancy guard. Section 5 describes this state as process-
// local and unsynchronized under the assumption of one cooperative
// driving goroutine; lock turns that assumption into a guarantee by
// serializing every entry point against the one goroutine genuinely
// allowed to run concurrently with it: a task's async commit (see
// lock.go, task.go).
type Runtime struct {
	tracker *Tracker
	batcher *Batcher
	queue   *EffectQueue
	guard   *FlushGuard
	logger  hclog.Logger
	lock    *runtimeLock

	settled []func()
}

func NewRuntime(logger hclog.Logger) *Runtime {
	return &Runtime{
		tracker: NewTracker(),
		batcher: NewBatcher(),
		queue:   NewEffectQueue(),
		guard:   NewFlushGuard(),
		logger:  logger,
		lock:    newRuntimeLock(),
	}
}

// Lock acquires the runtime-wide reentrant lock. Every public entry
// point (Get/Set/Update/Read, Flush, Batch, effect/scope construction
// and disposal, task abort) must hold it for its whole body; internal
// helpers (Refresh, Propagate, recompute*, Link/TrimSources) assume the
// caller already does and never lock themselves.
func (rt *Runtime) Lock() { rt.lock.Lock() }

// Unlock releases one level of Lock.
func (rt *Runtime) Unlock() { rt.lock.Unlock() }

var defaultRuntime = NewRuntime(defaultLogger())

// DefaultRuntime returns the single process-wide runtime instance.
func DefaultRuntime() *Runtime { return defaultRuntime }

// Schedule is called after any source write: it flushes immediately
// unless a batch is currently open (4.F).
func (rt *Runtime) Schedule() {
	rt.Lock()
	defer rt.Unlock()
	if !rt.batcher.IsBatching() {
		rt.flushLocked()
	}
}

// Flush drains the effect queue, guarded against reentrancy (4.E).
func (rt *Runtime) Flush() {
	rt.Lock()
	defer rt.Unlock()
	rt.flushLocked()
}

func (rt *Runtime) flushLocked() {
	_ = rt.guard.Run(func() error {
		err := rt.queue.Drain(func(n *Node) {
			_ = Refresh(rt, n)
		})
		if err != nil {
			rt.logger.Error("flush aborted", "error", err)
			return err
		}
		rt.runSettled()
		return nil
	})
}

// OnFlushed registers fn to run once, the next time a flush's queue
// fully drains, the settled hook from SPEC_FULL.md section 10.
func (rt *Runtime) OnFlushed(fn func()) {
	rt.settled = append(rt.settled, fn)
}

func (rt *Runtime) runSettled() {
	if len(rt.settled) == 0 {
		return
	}
	hooks := rt.settled
	rt.settled = nil
	for _, hook := range hooks {
		hook()
	}
}

func (rt *Runtime) CurrentOwner() *Owner { return rt.tracker.ActiveOwner() }
func (rt *Runtime) CurrentSink() *Node   { return rt.tracker.ActiveSink() }

// OnCleanup registers fn against whichever owner is currently active.
func (rt *Runtime) OnCleanup(fn func()) {
	if owner := rt.tracker.ActiveOwner(); owner != nil {
		owner.OnCleanup(fn)
	}
}

// Untrack runs fn with dependency tracking disabled.
func (rt *Runtime) Untrack(fn func()) {
	rt.tracker.RunUntracked(fn)
}

// SetLogger replaces the runtime's logger.
func (rt *Runtime) SetLogger(logger hclog.Logger) { rt.logger = logger }

// RunWithOwner runs fn with owner installed as the active owner,
// recovering into any of owner's registered OnError catchers (4.G).
func (rt *Runtime) RunWithOwner(owner *Owner, fn func()) {
	owner.Run(rt.tracker, fn)
}
