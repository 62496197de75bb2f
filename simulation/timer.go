package simulation

import "time"

// TickDuration is the length of one fixed update (60 ticks per second).
const TickDuration = time.Second / 60

type Timer struct {
	currentTime time.Duration
	targetTime  time.Duration
}

func NewTimer(target time.Duration) *Timer {
	return &Timer{
		currentTime: 0,
		targetTime:  target,
	}
}

func (t *Timer) Update() {
	t.currentTime += TickDuration
}

func (t *Timer) IsReady() bool {
	return t.currentTime >= t.targetTime
}

func (t *Timer) Reset() {
	t.currentTime = 0
}
