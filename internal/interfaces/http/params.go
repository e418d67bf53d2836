package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// paramID lee el parámetro de ruta "id" como int64. Devuelve 0 si no es válido.
func paramID(c *fiber.Ctx) int64 {
	return paramInt64(c, "id")
}

func paramInt64(c *fiber.Ctx, name string) int64 {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// queryDate lee un query param de fecha. Acepta RFC3339 y fecha corta (2026-08-29).
func queryDate(c *fiber.Ctx, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	return nil
}

// queryInt64 lee un query param entero opcional.
func queryInt64(c *fiber.Ctx, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// queryString lee un query param de texto opcional.
func queryString(c *fiber.Ctx, name string) *string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}
