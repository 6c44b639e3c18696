package reactive

import "github.com/nodal/reactive/internal/core"

// Memo is a synchronous derived value, recomputed lazily on read when
// any of its tracked dependencies have changed. The handle returned by
// CreateMemo.
type Memo[T any] struct {
	rt   *core.Runtime
	node *core.Node
}

func (m *Memo[T]) nodeKind() core.NodeKind { return m.node.Kind() }

// CreateMemo builds a derived value. fn must not be nil and is called
// with the previously committed value (the zero value of T on the
// first recompute, or the Initial option if set).
func CreateMemo[T any](fn func(prev T) T, opts ...Option[T]) (*Memo[T], error) {
	if fn == nil {
		return nil, &InvalidCallbackError{Kind: core.KindMemo, Reason: "compute function must not be nil"}
	}
	rt := core.DefaultRuntime()
	node := core.NewMemo(rt, func(prev any) any {
		return any(fn(asT[T](prev)))
	}, buildOptions(opts).toMemoCore())
	return &Memo[T]{rt: rt, node: node}, nil
}

// Get returns the memo's current value, refreshing first if stale.
func (m *Memo[T]) Get() (T, error) {
	v, err := core.Read(m.rt, m.node)
	if err != nil {
		var zero T
		return zero, err
	}
	return asT[T](v), nil
}
