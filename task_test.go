package reactive

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCancellation(t *testing.T) {
	src, _ := CreateState("a")

	task, err := CreateTask(
		func(prev string) string {
			v, _ := src.Get()
			return v
		},
		func(ctx context.Context, in string) (string, error) {
			select {
			case <-time.After(50 * time.Millisecond):
				return strings.ToUpper(in), nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		},
		WithInitial(""),
	)
	require.NoError(t, err)

	v, err := task.Get()
	require.NoError(t, err)
	assert.Equal(t, "", v, "first read returns the seeded value while the run is pending")

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, src.Set("b"))
	assert.False(t, task.IsPending(), "the aborted run's controller is cleared immediately")

	// The next read observes the task as Dirty and starts a fresh run
	// against the new dependency value.
	v, err = task.Get()
	require.NoError(t, err)
	assert.Equal(t, "", v, "still the last committed value while the fresh run is in flight")
	assert.True(t, task.IsPending())

	time.Sleep(60 * time.Millisecond)
	v, err = task.Get()
	require.NoError(t, err)
	assert.Equal(t, "B", v, "the superseded \"A\" resolution is dropped")
}

func TestTaskAbort(t *testing.T) {
	task, err := CreateTask(
		func(prev int) int { return prev },
		func(ctx context.Context, in int) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		},
		WithInitial(0),
	)
	require.NoError(t, err)

	_, _ = task.Get()
	assert.True(t, task.IsPending())

	task.Abort()
	assert.False(t, task.IsPending(), "abort cancels without scheduling a replacement run")

	v, err := task.Get()
	require.NoError(t, err)
	assert.Equal(t, 0, v, "the next get still observes the last committed value while it starts a fresh run")
}
