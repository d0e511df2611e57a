//go:build unix

package profiler

import (
	"time"

	"golang.org/x/sys/unix"
)

// processCPUTime returns the CPU time consumed by the whole process so far,
// user plus system.
func processCPUTime() (time.Duration, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano()), nil
}
