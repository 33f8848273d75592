package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bill-automation-api/internal/telemetry"
	"github.com/jhoicas/bill-automation-api/pkg/logger"
)

// RequestLogger registra cada petición con zerolog: método, ruta, status, latencia y request id.
func RequestLogger(log *logger.Logger) fiber.Handler {
	l := log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		handleError(c, err)
		status := c.Response().StatusCode()
		ev := l.Info()
		if status >= fiber.StatusInternalServerError {
			ev = l.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("user", GetUsername(c)).
			Msg("request")
		return nil
	}
}

// Metrics cuenta peticiones por ruta registrada (no por path literal, para acotar cardinalidad).
// Igual que RequestLogger, resuelve el error antes de leer el status.
func Metrics(m *telemetry.HTTPMetrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		done := m.Begin()
		handleError(c, c.Next())
		done(c.Method(), c.Route().Path, strconv.Itoa(c.Response().StatusCode()))
		return nil
	}
}

// handleError escribe la respuesta de error con el ErrorHandler de la app.
func handleError(c *fiber.Ctx, err error) {
	if err == nil {
		return
	}
	if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}
