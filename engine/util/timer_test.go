package util

import (
	"strings"
	"testing"
	"time"
)

func TestFrameTimerElapsed(t *testing.T) {
	clock := time.Unix(0, 0)
	timer := NewFrameTimer()
	timer.now = func() time.Time { return clock }
	timer.last = clock

	clock = clock.Add(16 * time.Millisecond)
	elapsed, _ := timer.Tick()
	if elapsed < 0.0159 || elapsed > 0.0161 {
		t.Errorf("elapsed = %f, want ~0.016", elapsed)
	}
	if timer.Ticks() != 1 {
		t.Errorf("ticks = %d, want 1", timer.Ticks())
	}
}

func TestFrameTimerReportsEverySixtyTicks(t *testing.T) {
	clock := time.Unix(0, 0)
	timer := NewFrameTimer()
	timer.now = func() time.Time { return clock }
	timer.last = clock

	reports := 0
	for i := 0; i < 120; i++ {
		clock = clock.Add(16 * time.Millisecond)
		_, report := timer.Tick()
		if report != "" {
			reports++
			if !strings.HasPrefix(report, "FPS:") {
				t.Errorf("unexpected report format: %q", report)
			}
		}
	}
	if reports != 2 {
		t.Errorf("got %d reports over 120 ticks, want 2", reports)
	}
}
