package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSensorLifecycle(t *testing.T) {
	started, stopped := 0, 0

	sensor, err := CreateSensor(func(set func(int)) func() {
		started++
		set(0)
		return func() { stopped++ }
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, started, "start is not called before any sink connects")

	dispose := CreateEffect(func() func() {
		_, _ = sensor.Get()
		return nil
	})
	assert.Equal(t, 1, started)
	assert.Equal(t, 0, stopped)

	dispose()
	assert.Equal(t, 1, stopped)

	dispose2 := CreateEffect(func() func() {
		_, _ = sensor.Get()
		return nil
	})
	defer dispose2()
	assert.Equal(t, 2, started)
}
