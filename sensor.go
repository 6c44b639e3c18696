package reactive

import "github.com/nodal/reactive/internal/core"

// Sensor is a lazily-activated source: start only runs while at least
// one sink is connected. The handle returned by CreateSensor.
type Sensor[T any] struct {
	rt   *core.Runtime
	node *core.Node
}

func (s *Sensor[T]) nodeKind() core.NodeKind { return s.node.Kind() }

// CreateSensor builds a source whose value arrives through calls to the
// set callback passed into start. start must not be nil and must return
// a teardown invoked when the last sink disconnects.
func CreateSensor[T any](start func(set func(T)) func(), opts ...Option[T]) (*Sensor[T], error) {
	if start == nil {
		return nil, &InvalidCallbackError{Kind: core.KindSensor, Reason: "start must not be nil"}
	}
	rt := core.DefaultRuntime()
	node, err := core.NewSensor(rt, func(set func(any)) func() {
		return start(func(v T) { set(any(v)) })
	}, buildOptions(opts).toCore())
	if err != nil {
		return nil, err
	}
	return &Sensor[T]{rt: rt, node: node}, nil
}

// Get reads the sensor's current value, activating start on the first
// call made while a sink is running.
func (s *Sensor[T]) Get() (T, error) {
	v, err := core.Get(s.rt, s.node)
	if err != nil {
		var zero T
		return zero, err
	}
	return asT[T](v), nil
}
