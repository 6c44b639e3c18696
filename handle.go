package reactive

import "github.com/nodal/reactive/internal/core"

// handle is the unexported brand every public node type implements, per
// section 6's "opaque brand/tag permitting runtime is* checks", the
// same shape as the typed wrapper structs (Signal[T], Computed[T]) this
// package's handles are built from, each holding a concrete engine node.
type handle interface {
	nodeKind() core.NodeKind
}

func IsState(h any) bool  { return hasKind(h, core.KindState) }
func IsSensor(h any) bool { return hasKind(h, core.KindSensor) }
func IsMemo(h any) bool   { return hasKind(h, core.KindMemo) }
func IsTask(h any) bool   { return hasKind(h, core.KindTask) }
func IsEffect(h any) bool { return hasKind(h, core.KindEffect) }

func hasKind(h any, kind core.NodeKind) bool {
	hh, ok := h.(handle)
	return ok && hh.nodeKind() == kind
}
