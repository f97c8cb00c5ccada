package observers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	t.Run("默认空闲", func(t *testing.T) {
		assert.False(t, NewRecorder().IsBusy())
	})

	t.Run("跟随通知", func(t *testing.T) {
		r := NewRecorder()

		r.OnBusyStateChanged(true)
		assert.True(t, r.IsBusy())

		r.OnBusyStateChanged(false)
		assert.False(t, r.IsBusy())
	})

	t.Run("始终等于最后一次通知的值", func(t *testing.T) {
		sequences := [][]bool{
			{true},
			{false},
			{true, true},
			{true, false, true},
			{false, true, false, false},
			{true, false, true, false, true, true},
		}
		for _, seq := range sequences {
			r := NewRecorder()
			for _, v := range seq {
				r.OnBusyStateChanged(v)
			}
			assert.Equal(t, seq[len(seq)-1], r.IsBusy(), "sequence %v", seq)
		}
	})
}

func TestFunc(t *testing.T) {
	var got []bool
	f := Func(func(isBusy bool) { got = append(got, isBusy) })

	f.OnBusyStateChanged(true)
	f.OnBusyStateChanged(false)
	assert.Equal(t, []bool{true, false}, got)

	assert.NotPanics(t, func() { Func(nil).OnBusyStateChanged(true) })
}
