package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRuntime() *Runtime {
	return NewRuntime(defaultLogger())
}

func TestRecomputeTaskSupersession(t *testing.T) {
	rt := testRuntime()

	src, err := NewState(rt, "a", StateOptions{})
	require.NoError(t, err)

	node := NewTask(rt,
		func(prev any) any {
			v, _ := Get(rt, src)
			return v
		},
		func(ctx context.Context, in any) (any, error) {
			select {
			case <-time.After(40 * time.Millisecond):
				return in.(string) + "-resolved", nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
		MemoOptions{Initial: ""},
	)

	// Refresh is an internal helper that assumes its caller already holds
	// the runtime lock (Read and Flush do this for real callers); a test
	// driving it directly has to take the same lock itself, since the
	// task's async commit below genuinely runs on another goroutine.
	rt.Lock()
	require.NoError(t, Refresh(rt, node))
	rt.Unlock()
	assert.True(t, IsTaskPending(rt, node))

	require.NoError(t, Set(rt, src, "b"))
	assert.False(t, IsTaskPending(rt, node), "the write aborted the in-flight run")
	assert.True(t, node.HasFlag(FlagDirty))

	rt.Lock()
	require.NoError(t, Refresh(rt, node))
	rt.Unlock()
	assert.True(t, IsTaskPending(rt, node), "refresh while dirty starts a fresh run")

	time.Sleep(80 * time.Millisecond)

	rt.Lock()
	value := node.value
	rt.Unlock()

	assert.Equal(t, "b-resolved", value)
}
