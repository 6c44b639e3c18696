package core

import "context"

// MemoOptions configures a memo or task at construction: Initial seeds
// the value passed as `prev` to the first recompute, Equals overrides
// reference equality, Guard rejects a freshly computed value (mirroring
// a source's write-time guard, applied at commit time instead).
type MemoOptions struct {
	Initial any
	Equals  func(a, b any) bool
	Guard   func(v any) bool
}

// NewMemo builds a lazily-recomputed node whose value is derived from fn.
// It is created Dirty so the first read (or the next flush, if something
// already depends on it) runs fn once to seed node.value, per 4.D.
func NewMemo(rt *Runtime, fn func(prev any) any, opts MemoOptions) *Node {
	n := NewNode(KindMemo)
	n.computeFn = fn
	n.value = opts.Initial
	if opts.Equals != nil {
		n.equals = opts.Equals
	}
	n.guard = opts.Guard
	n.AddFlag(FlagDirty)
	return n
}

// NewTask builds a node whose value resolves asynchronously. input is
// run synchronously and tracked like a memo; its result feeds async,
// which runs on its own goroutine and does not track reads (4.H).
func NewTask(rt *Runtime, input func(prev any) any, async func(ctx context.Context, in any) (any, error), opts MemoOptions) *Node {
	n := NewNode(KindTask)
	n.computeFn = input
	n.asyncFn = async
	n.value = opts.Initial
	if opts.Equals != nil {
		n.equals = opts.Equals
	}
	n.guard = opts.Guard
	n.AddFlag(FlagDirty)
	return n
}
