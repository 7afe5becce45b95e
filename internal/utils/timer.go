package utils

import "time"

// Timer measures elapsed wall-clock time. [NewTimer] starts it; [Timer.Stop]
// captures the elapsed duration returned by [Timer.GetDuration].
type Timer struct {
	startTime time.Time
	duration  time.Duration
}

func NewTimer() *Timer {
	return &Timer{startTime: time.Now()}
}

// Stop records the time elapsed since construction. Calling it again
// overwrites the previous measurement.
func (t *Timer) Stop() {
	t.duration = time.Since(t.startTime)
}

// GetDuration returns the duration captured by the most recent Stop, or zero.
func (t *Timer) GetDuration() time.Duration {
	return t.duration
}
