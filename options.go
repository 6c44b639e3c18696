package reactive

import "github.com/nodal/reactive/internal/core"

// options collects the per-kind configuration an Option mutates. Not
// every field applies to every factory: memo/task ignore watched,
// state and sensor ignore initial, and sensor also ignores watched
// (start, passed separately, takes its place).
type options[T any] struct {
	equals  func(a, b T) bool
	guard   func(v T) bool
	watched func(set func(T)) func()
	initial *T
}

// Option configures a state, sensor, memo or task at construction time,
// grounded on pumped-go's WithXxx(...) ExecutorOption/ScopeOption
// pattern, generalized across every node kind instead of just a scope
// or executor.
type Option[T any] func(*options[T])

// WithEquals overrides the default reference-equality check used to
// decide whether a write or recompute actually changed the value.
func WithEquals[T any](equals func(a, b T) bool) Option[T] {
	return func(o *options[T]) { o.equals = equals }
}

// WithGuard rejects values that fail pred, returning InvalidSignalValueError
// from the offending set/update/factory call instead of committing them.
func WithGuard[T any](pred func(v T) bool) Option[T] {
	return func(o *options[T]) { o.guard = pred }
}

// WithWatched installs a lifecycle hook for a state source, invoked when
// its sink count transitions 0→1 and torn down at 1→0.
func WithWatched[T any](watched func(set func(T)) func()) Option[T] {
	return func(o *options[T]) { o.watched = watched }
}

// WithInitial seeds a memo or task's value before its first recompute,
// passed as `prev` on that first call.
func WithInitial[T any](initial T) Option[T] {
	return func(o *options[T]) { o.initial = &initial }
}

func buildOptions[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

func (o options[T]) toMemoCore() core.MemoOptions {
	var mo core.MemoOptions
	if o.initial != nil {
		mo.Initial = any(*o.initial)
	}
	if o.equals != nil {
		mo.Equals = func(a, b any) bool { return o.equals(asT[T](a), asT[T](b)) }
	}
	if o.guard != nil {
		mo.Guard = func(v any) bool { return o.guard(asT[T](v)) }
	}
	return mo
}

func (o options[T]) toCore() core.StateOptions {
	var co core.StateOptions
	if o.equals != nil {
		co.Equals = func(a, b any) bool { return o.equals(asT[T](a), asT[T](b)) }
	}
	if o.guard != nil {
		co.Guard = func(v any) bool { return o.guard(asT[T](v)) }
	}
	if o.watched != nil {
		co.Watched = func(set func(any)) func() {
			return o.watched(func(v T) { set(v) })
		}
	}
	return co
}

// asT recovers a typed zero value for nil, since core stores values as
// `any` and a fresh state/memo/task may not have committed one yet.
func asT[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
