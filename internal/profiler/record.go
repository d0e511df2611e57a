package profiler

import "time"

// Record is one profiled request. Immutable once constructed; Path holds the
// route template (e.g. /items/:id) rather than the literal URL so record
// cardinality stays bounded across requests with the same shape.
type Record struct {
	Timestamp   time.Time
	Path        string
	Method      string
	StatusCode  int
	TotalTimeMs float64
	CPUTimeMs   float64
}
