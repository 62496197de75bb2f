package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer(t *testing.T) {
	timer := NewTimer(5 * TickDuration)
	assert.False(t, timer.IsReady())

	for i := 0; i < 4; i++ {
		timer.Update()
	}
	assert.False(t, timer.IsReady())

	timer.Update()
	assert.True(t, timer.IsReady())

	timer.Reset()
	assert.False(t, timer.IsReady())
}

func TestTimerPartialTick(t *testing.T) {
	timer := NewTimer(100 * time.Millisecond)

	// Six ticks of 1/60s fall just short of 100ms.
	for i := 0; i < 6; i++ {
		timer.Update()
	}
	assert.False(t, timer.IsReady())

	timer.Update()
	assert.True(t, timer.IsReady())
}
