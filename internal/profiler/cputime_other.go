//go:build !unix

package profiler

import (
	"errors"
	"time"
)

var errCPUTimeUnavailable = errors.New("process cpu time not available on this platform")

func processCPUTime() (time.Duration, error) {
	return 0, errCPUTimeUnavailable
}
