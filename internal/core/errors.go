package core

import "fmt"

// CircularDependencyError is raised when refresh reenters a node that is
// still RUNNING, i.e. a dependency cycle was closed by the current read.
type CircularDependencyError struct {
	Kind NodeKind
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("reactive: circular dependency detected while refreshing a %s node", e.Kind)
}

// NullishSignalValueError is raised by a factory or setter when the
// supplied value is nil.
type NullishSignalValueError struct {
	Kind NodeKind
}

func (e *NullishSignalValueError) Error() string {
	return fmt.Sprintf("reactive: nil value is not allowed for a %s node", e.Kind)
}

// InvalidSignalValueError is raised when a node's guard rejects a value.
type InvalidSignalValueError struct {
	Kind  NodeKind
	Value any
}

func (e *InvalidSignalValueError) Error() string {
	return fmt.Sprintf("reactive: value %v rejected by guard for a %s node", e.Value, e.Kind)
}

// InvalidCallbackError is raised when a factory or update call is given a
// nil callback. Synchronicity is fixed by the callback's Go function
// type, so no runtime check raises it for that.
type InvalidCallbackError struct {
	Kind   NodeKind
	Reason string
}

func (e *InvalidCallbackError) Error() string {
	return fmt.Sprintf("reactive: invalid callback for a %s node: %s", e.Kind, e.Reason)
}
