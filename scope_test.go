package reactive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodal/reactive/internal/core"
)

func TestScopedCleanup(t *testing.T) {
	log := []string{}
	state, _ := CreateState(0)

	_, dispose := CreateScope(func(register func(func())) any {
		CreateEffect(func() func() {
			v, _ := state.Get()
			log = append(log, fmt.Sprintf("v%d", v))
			return func() { log = append(log, "clean") }
		})
		return nil
	})

	dispose()
	assert.Equal(t, []string{"v0", "clean"}, log)

	require.NoError(t, state.Set(1))
	assert.Equal(t, []string{"v0", "clean"}, log, "a disposed scope's effect never runs again")
}

func TestScopeRestoresActiveOwner(t *testing.T) {
	outerRan := false

	_, disposeOuter := CreateScope(func(register func(func())) any {
		outer := core.DefaultRuntime().CurrentOwner()
		_, disposeInner := CreateScope(func(register func(func())) any {
			return nil
		})
		disposeInner()
		assert.Same(t, outer, core.DefaultRuntime().CurrentOwner(), "the inner scope hands the active owner back to the outer scope")

		CreateEffect(func() func() {
			outerRan = true
			return nil
		})
		return nil
	})
	defer disposeOuter()

	assert.True(t, outerRan)
}
