package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// parsePositiveQuery reads a positive integer query parameter, returning
// fallback when absent or unparseable. Out-of-range values fall back
// silently; clamping is the service's concern.
func parsePositiveQuery(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
