package reactive

import "github.com/nodal/reactive/internal/core"

// Signal is a mutable source of type T, the handle returned by
// CreateState.
type Signal[T any] struct {
	rt   *core.Runtime
	node *core.Node
}

func (s *Signal[T]) nodeKind() core.NodeKind { return s.node.Kind() }

// CreateState builds a mutable source seeded with initial. initial must
// not be a nil interface value; if WithGuard is given, it must accept
// initial.
func CreateState[T any](initial T, opts ...Option[T]) (*Signal[T], error) {
	rt := core.DefaultRuntime()
	node, err := core.NewState(rt, any(initial), buildOptions(opts).toCore())
	if err != nil {
		return nil, err
	}
	return &Signal[T]{rt: rt, node: node}, nil
}

// Get reads the current value, tracking it as a dependency if called
// from inside a running memo/task/effect.
func (s *Signal[T]) Get() (T, error) {
	v, err := core.Get(s.rt, s.node)
	if err != nil {
		var zero T
		return zero, err
	}
	return asT[T](v), nil
}

// Set writes a new value. A write that equals the current value (per
// the configured Equals) is a no-op.
func (s *Signal[T]) Set(v T) error {
	return core.Set(s.rt, s.node, any(v))
}

// Update reads the current value, applies fn, and writes back the
// result.
func (s *Signal[T]) Update(fn func(prev T) T) error {
	if fn == nil {
		return &InvalidCallbackError{Kind: core.KindState, Reason: "update function must not be nil"}
	}
	return core.Update(s.rt, s.node, func(prev any) any {
		return any(fn(asT[T](prev)))
	})
}
