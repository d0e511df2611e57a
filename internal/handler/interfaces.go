package handler

import "simpleprofiler/internal/profiler"

type MetricsStore interface {
	Snapshot() []profiler.Record
	Clear()
}

type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string)
}
