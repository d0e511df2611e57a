package profiler

import (
	"math"
	"time"
)

// Clock opens measurement windows over wall-clock and process CPU time.
// Windows are independent; concurrent requests may hold open windows at the
// same time.
type Clock interface {
	Start() Window
	// CPUSupported reports whether CPU time comes from a real process counter.
	// When false, Stop duplicates wall time into the CPU field.
	CPUSupported() bool
}

// Window is one in-flight measurement. Stop returns elapsed wall-clock and
// CPU milliseconds, both non-negative.
type Window interface {
	Stop() (wallMs, cpuMs float64)
}

type systemClock struct {
	cpuSupported bool
}

// NewClock returns the production Clock. It probes the process CPU counter
// once at construction; if the counter is unavailable the clock degrades to
// reporting wall time for both fields and never fails mid-request.
func NewClock() Clock {
	_, err := processCPUTime()
	return &systemClock{cpuSupported: err == nil}
}

func (c *systemClock) CPUSupported() bool { return c.cpuSupported }

func (c *systemClock) Start() Window {
	w := &systemWindow{clock: c, wallStart: time.Now()}
	if c.cpuSupported {
		cpu, err := processCPUTime()
		if err != nil {
			w.cpuFailed = true
			return w
		}
		w.cpuStart = cpu
	}
	return w
}

type systemWindow struct {
	clock     *systemClock
	wallStart time.Time
	cpuStart  time.Duration
	cpuFailed bool
}

// Stop reads both clocks. The CPU counter is process-wide, so under parallel
// load a window's CPU delta can include work done by other requests; callers
// treat the value as informational.
func (w *systemWindow) Stop() (wallMs, cpuMs float64) {
	wallMs = RoundMs(float64(time.Since(w.wallStart)) / float64(time.Millisecond))

	if !w.clock.cpuSupported || w.cpuFailed {
		return wallMs, wallMs
	}
	cpuNow, err := processCPUTime()
	if err != nil {
		return wallMs, wallMs
	}
	cpu := cpuNow - w.cpuStart
	if cpu < 0 {
		cpu = 0
	}
	return wallMs, RoundMs(float64(cpu) / float64(time.Millisecond))
}

// RoundMs rounds a millisecond value to 3 decimal places, the precision used
// on export.
func RoundMs(ms float64) float64 {
	return math.Round(ms*1000) / 1000
}
