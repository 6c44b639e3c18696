package reactive

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoDiamond(t *testing.T) {
	a, err := CreateState(1)
	require.NoError(t, err)

	recomputesD := 0
	b, _ := CreateMemo(func(int) int { v, _ := a.Get(); return v * 2 })
	c, _ := CreateMemo(func(int) int { v, _ := a.Get(); return v + 1 })
	d, _ := CreateMemo(func(int) int {
		recomputesD++
		bv, _ := b.Get()
		cv, _ := c.Get()
		return bv + cv
	})

	log := []string{}
	dispose := CreateEffect(func() func() {
		v, _ := d.Get()
		log = append(log, fmt.Sprintf("%d", v))
		return nil
	})
	defer dispose()

	recomputesD = 0
	require.NoError(t, a.Set(5))

	assert.Equal(t, 1, recomputesD, "d recomputes exactly once per changed batch")
	assert.Equal(t, []string{"4", "16"}, log)
}

func TestMemoErrorRecovery(t *testing.T) {
	a, _ := CreateState(0)
	m, _ := CreateMemo(func(int) int {
		v, _ := a.Get()
		if v == 1 {
			panic(errors.New("x"))
		}
		return v
	})

	v, err := m.Get()
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	require.NoError(t, a.Set(1))
	_, err = m.Get()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x")

	require.NoError(t, a.Set(2))
	v, err = m.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}
