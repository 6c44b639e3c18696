package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countEdges(n *Node) (sinks, sources int) {
	for range n.Sinks {
		sinks++
	}
	for range n.Sources {
		sources++
	}
	return
}

func TestEdgeLiveness(t *testing.T) {
	t.Run("link is recorded in both lists", func(t *testing.T) {
		dep := NewNode(KindState)
		dep.value = 1

		sink := NewNode(KindMemo)
		sink.AddFlag(FlagRunning)

		Link(dep, sink)

		sinks, _ := countEdges(dep)
		_, sources := countEdges(sink)
		assert.Equal(t, 1, sinks)
		assert.Equal(t, 1, sources)
	})

	t.Run("redundant consecutive reads coalesce to one edge", func(t *testing.T) {
		dep := NewNode(KindState)
		sink := NewNode(KindMemo)
		sink.AddFlag(FlagRunning)

		Link(dep, sink)
		Link(dep, sink)
		Link(dep, sink)

		sinks, _ := countEdges(dep)
		assert.Equal(t, 1, sinks)
	})

	t.Run("TrimSources unlinks edges past the cursor from both lists", func(t *testing.T) {
		a := NewNode(KindState)
		b := NewNode(KindState)
		sink := NewNode(KindMemo)
		sink.AddFlag(FlagRunning)

		Link(a, sink)
		Link(b, sink)

		// simulate a new generation that only reads a
		sink.sourcesTail = nil
		Link(a, sink)
		sink.TrimSources()

		_, sources := countEdges(sink)
		assert.Equal(t, 1, sources, "b's edge was trimmed from sink's source list")

		bSinks, _ := countEdges(b)
		assert.Equal(t, 0, bSinks, "b's edge was also removed from b's sink list")
	})

	t.Run("last sink disconnecting runs deactivate", func(t *testing.T) {
		stopped := 0
		dep := NewNode(KindSensor)
		dep.activate = func(set func(any)) func() {
			return func() { stopped++ }
		}

		sink := NewNode(KindEffect)
		sink.AddFlag(FlagRunning)
		Link(dep, sink)
		assert.Equal(t, 0, stopped)

		sink.ClearSources()
		assert.Equal(t, 1, stopped)
	})
}
