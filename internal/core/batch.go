package core

// Batcher is the depth counter from section 4.F: each nested Batch call
// increases depth by one; writes still Propagate immediately (dirty
// flags and task abortion happen synchronously) but Flush only runs
// once depth returns to zero.
type Batcher struct {
	depth int
}

func NewBatcher() *Batcher {
	return &Batcher{}
}

func (b *Batcher) IsBatching() bool {
	return b.depth > 0
}

func (b *Batcher) Run(fn func(), onComplete func()) {
	b.depth++
	defer func() {
		b.depth--
		if b.depth == 0 && onComplete != nil {
			onComplete()
		}
	}()

	fn()
}

// Batch runs fn with flush deferred until the outermost batch closes.
// Held under the runtime lock for its whole duration (reentrant, so
// nested Batch/Set/Get calls inside fn are unaffected) so a task commit
// landing mid-batch can't interleave with the batched writes or the
// final flush.
func Batch(rt *Runtime, fn func()) {
	rt.Lock()
	defer rt.Unlock()
	rt.batcher.Run(fn, rt.Flush)
}
