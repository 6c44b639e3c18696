package reactive

import (
	"context"

	"github.com/nodal/reactive/internal/core"
)

// Task is an asynchronous derived value with cancellation, per 4.H. The
// handle returned by CreateTask.
type Task[T any] struct {
	rt   *core.Runtime
	node *core.Node
}

func (t *Task[T]) nodeKind() core.NodeKind { return t.node.Kind() }

// CreateTask builds an async derived value, split into the two phases
// 4.H describes: input runs synchronously under tracking, the
// equivalent of a JS async function's body up to its first `await`,
// and its result feeds async, which runs on its own goroutine and
// receives a context cancelled the moment a newer run supersedes it
// (a tracked dependency changed again, or Abort was called). Go has no
// suspension point to split a single function at, so the two phases are
// two arguments rather than one function and an implicit await.
func CreateTask[T any](input func(prev T) T, async func(ctx context.Context, in T) (T, error), opts ...Option[T]) (*Task[T], error) {
	if input == nil || async == nil {
		return nil, &InvalidCallbackError{Kind: core.KindTask, Reason: "input and async functions must not be nil"}
	}
	rt := core.DefaultRuntime()
	node := core.NewTask(rt,
		func(prev any) any { return any(input(asT[T](prev))) },
		func(ctx context.Context, in any) (any, error) {
			v, err := async(ctx, asT[T](in))
			return any(v), err
		},
		buildOptions(opts).toMemoCore(),
	)
	return &Task[T]{rt: rt, node: node}, nil
}

// Get returns the task's last committed value, rethrowing a stored
// error if one is set. A pending run never changes what Get returns
// until it resolves.
func (t *Task[T]) Get() (T, error) {
	v, err := core.Read(t.rt, t.node)
	if err != nil {
		var zero T
		return zero, err
	}
	return asT[T](v), nil
}

// IsPending reports whether an async run is currently in flight.
func (t *Task[T]) IsPending() bool {
	return core.IsTaskPending(t.rt, t.node)
}

// Abort cancels any in-flight run without scheduling a replacement; the
// next Get starts a fresh run.
func (t *Task[T]) Abort() {
	core.AbortTask(t.rt, t.node)
}
