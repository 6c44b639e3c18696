package reactive

import "github.com/nodal/reactive/internal/core"

// CreateScope runs fn synchronously with a fresh scope installed as the
// active owner, so effects created inside fn are cleaned up together.
// register lets fn attach additional cleanups directly to the scope.
// If called from inside another owner, the scope's dispose is pushed
// onto that owner's cleanups, cascading teardown (4.G). Returns fn's
// result and the scope's disposer.
func CreateScope[T any](fn func(register func(cleanup func())) T) (T, func()) {
	rt := core.DefaultRuntime()

	rt.Lock()
	parent := rt.CurrentOwner()
	scope := core.NewOwner(parent)

	var result T
	rt.RunWithOwner(scope, func() {
		result = fn(scope.OnCleanup)
	})
	rt.Unlock()

	dispose := func() {
		rt.Lock()
		defer rt.Unlock()
		scope.Dispose()
	}
	if parent != nil {
		parent.OnCleanup(dispose)
	}

	return result, dispose
}
