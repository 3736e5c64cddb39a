package util

import (
	"fmt"
	"math"
	"time"
)

const fpsWindow = 60

// FrameTimer measures the elapsed time between frames and keeps running
// FPS statistics over a window of 60 ticks.
type FrameTimer struct {
	now   func() time.Time
	last  time.Time
	ticks uint64

	runningAvg float64
	min        float64
	max        float64
}

func NewFrameTimer() *FrameTimer {
	t := &FrameTimer{now: time.Now}
	t.last = t.now()
	t.min = math.MaxFloat64
	return t
}

// Tick returns the seconds since the previous tick. Every 60th tick it
// also returns a one-line stats report and resets the window.
func (t *FrameTimer) Tick() (elapsed float64, report string) {
	now := t.now()
	elapsed = now.Sub(t.last).Seconds()
	t.last = now
	t.ticks++

	fps := math.Inf(1)
	if elapsed > 0 {
		fps = 1.0 / elapsed
	}
	t.runningAvg += fps / fpsWindow
	if fps < t.min {
		t.min = fps
	}
	if fps > t.max {
		t.max = fps
	}

	if t.ticks%fpsWindow == 0 {
		report = fmt.Sprintf("FPS: %.0f (Avg: %.0f, Min: %.0f, Max: %.0f) / Elapsed: %.3fms",
			fps, t.runningAvg, t.min, t.max, elapsed*1000)
		t.runningAvg = 0
		t.min = math.MaxFloat64
		t.max = 0
	}
	return elapsed, report
}

// Ticks returns the number of completed frames.
func (t *FrameTimer) Ticks() uint64 {
	return t.ticks
}
