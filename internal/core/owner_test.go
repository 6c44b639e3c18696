package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnerCleanupLIFO(t *testing.T) {
	log := []int{}
	o := NewOwner(nil)
	o.OnCleanup(func() { log = append(log, 1) })
	o.OnCleanup(func() { log = append(log, 2) })
	o.OnCleanup(func() { log = append(log, 3) })

	o.Dispose()
	assert.Equal(t, []int{3, 2, 1}, log)
}

func TestOwnerDisposeIdempotent(t *testing.T) {
	runs := 0
	o := NewOwner(nil)
	o.OnCleanup(func() { runs++ })

	o.Dispose()
	o.Dispose()
	assert.Equal(t, 1, runs)
}

func TestOwnerContextInheritance(t *testing.T) {
	parent := NewOwner(nil)
	parent.SetContextValue("k", "parent-value")

	child := NewOwner(parent)
	v, ok := child.ContextValue("k")
	assert.True(t, ok)
	assert.Equal(t, "parent-value", v)

	child.SetContextValue("k", "child-value")
	v, _ = child.ContextValue("k")
	assert.Equal(t, "child-value", v)

	v, _ = parent.ContextValue("k")
	assert.Equal(t, "parent-value", v, "child's override doesn't leak to the parent")
}
