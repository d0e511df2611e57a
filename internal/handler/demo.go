package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

var (
	errInvalidItemID = map[string]string{"error": "item id must be an integer"}
	respHealthOK     = map[string]string{"status": "ok"}
	respRoot         = map[string]string{"message": "hello"}
	respSlow         = map[string]string{"message": "this was a slow request"}
)

// Demo hosts the example workload endpoints: a mix of sleepy and CPU-bound
// handlers that produce visibly different profiles.
type Demo struct {
	cache  Cache
	logger *slog.Logger
}

func NewDemo(cache Cache, logger *slog.Logger) *Demo {
	return &Demo{cache: cache, logger: logger}
}

func (h *Demo) Register(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/api/v1/health", h.Health)
	e.GET("/items/:id", h.Item)
	e.GET("/cpu-intensive", h.CPUIntensive)
	e.GET("/slow", h.Slow)
}

func (h *Demo) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Demo) Root(c echo.Context) error {
	time.Sleep(10 * time.Millisecond)
	return c.JSON(http.StatusOK, respRoot)
}

// Item simulates different work per id: even ids wait on I/O, odd ids burn
// CPU. Results are cached, so a repeat hit returns almost instantly.
func (h *Demo) Item(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidItemID)
	}

	key := "item:" + strconv.Itoa(id)
	if digest, ok := h.cache.Get(key); ok {
		return c.JSON(http.StatusOK, map[string]any{
			"item_id": id, "digest": digest, "cached": true,
		})
	}

	var digest string
	if id%2 == 0 {
		time.Sleep(50 * time.Millisecond)
		digest = strconv.FormatInt(int64(id), 16)
	} else {
		digest = strconv.FormatUint(burnCPU(200_000), 16)
	}
	h.cache.Set(key, digest)

	return c.JSON(http.StatusOK, map[string]any{
		"item_id": id, "digest": digest, "cached": false,
	})
}

func (h *Demo) CPUIntensive(c echo.Context) error {
	h.logger.Info("cpu-intensive endpoint activated")
	result := burnCPU(2_000_000)
	h.logger.Info("cpu-intensive endpoint finished")

	return c.JSON(http.StatusOK, map[string]any{
		"message": "cpu intensive task completed",
		"result":  result % 100,
	})
}

func (h *Demo) Slow(c echo.Context) error {
	time.Sleep(500 * time.Millisecond)
	return c.JSON(http.StatusOK, respSlow)
}

// burnCPU keeps the processor busy for a deterministic amount of work.
func burnCPU(rounds int) uint64 {
	var acc uint64
	for i := 0; i < rounds; i++ {
		for x := 0; x < 50; x++ {
			acc += uint64(x*x) ^ uint64(i)
		}
	}
	return acc
}
