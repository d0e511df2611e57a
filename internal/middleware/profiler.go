package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"simpleprofiler/internal/profiler"
)

//go:generate mockery

// Recorder receives exactly one record per profiled request.
type Recorder interface {
	Insert(r profiler.Record)
}

// failureStatus is recorded when the handler fails before producing a
// response.
const failureStatus = http.StatusInternalServerError

// Profiler returns middleware that measures wall-clock and CPU time for each
// request selected by profiler.ShouldProfile and hands the resulting record
// to the store. Requests not selected pass through untouched. Handler errors
// and panics are recorded with a sentinel status and then propagated
// unchanged.
func Profiler(cfg profiler.Config, store Recorder, clock profiler.Clock, logger *slog.Logger) echo.MiddlewareFunc {
	if !clock.CPUSupported() {
		logger.Warn("process cpu counter unavailable, cpu time will mirror wall time")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if !profiler.ShouldProfile(cfg, c.QueryParams()) {
				return next(c)
			}

			w := clock.Start()
			panicked := true

			// Runs during panic unwinding too, so the window is closed and
			// the record inserted before the panic continues upward.
			defer func() {
				wallMs, cpuMs := w.Stop()

				statusCode := c.Response().Status
				switch {
				case panicked:
					statusCode = failureStatus
				case err != nil:
					var he *echo.HTTPError
					if errors.As(err, &he) {
						statusCode = he.Code
					} else {
						statusCode = failureStatus
					}
				}

				path := c.Path()
				if path == "" {
					path = "/"
				}
				store.Insert(profiler.Record{
					Timestamp:   time.Now(),
					Path:        path,
					Method:      c.Request().Method,
					StatusCode:  statusCode,
					TotalTimeMs: wallMs,
					CPUTimeMs:   cpuMs,
				})
			}()

			err = next(c)
			panicked = false
			return err
		}
	}
}
