package middleware

import (
	"log/slog"
	"time"

	"inkwell/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs every request with method, path, status and duration.
// The request ID set by the requestid middleware is propagated into the
// request context so deeper layers log it too.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if rid, ok := c.Locals("requestid").(string); ok {
			c.SetUserContext(observability.WithRequestID(c.UserContext(), rid))
		}

		err := c.Next()

		status := c.Response().StatusCode()
		attrs := []slog.Attr{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}

		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}
		observability.Logger.LogAttrs(c.UserContext(), level, "request", attrs...)

		return err
	}
}
