package utils

import (
	"testing"
	"time"
)

func TestTimer(t *testing.T) {
	timer := NewTimer()
	if timer.GetDuration() != 0 {
		t.Errorf("GetDuration() before Stop = %v, want 0", timer.GetDuration())
	}

	time.Sleep(time.Millisecond)
	timer.Stop()

	if timer.GetDuration() <= 0 {
		t.Errorf("expected positive duration after Stop, got %v", timer.GetDuration())
	}
}
