package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"github.com/artem13815/qagen/pkg/logger"
)

const (
	HeaderRequestID = "X-Request-Id"
	localsRequestID = "requestId"
)

// RequestID returns the id assigned by RequestLog, "" outside of it.
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsRequestID).(string)
	return id
}

// RequestLog assigns a request id (reusing an inbound X-Request-Id) and logs
// one line per request once the response status is known.
func RequestLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		// Header and path strings alias fasthttp buffers; copy what outlives the handler.
		id := utils.CopyString(strings.TrimSpace(c.Get(HeaderRequestID)))
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(localsRequestID, id)
		c.Set(HeaderRequestID, id)

		if err := c.Next(); err != nil {
			// Render the error now so the logged status is the one sent.
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		log.Info("http request",
			"request_id", id,
			"method", utils.CopyString(c.Method()),
			"path", utils.CopyString(c.Path()),
			"status", c.Response().StatusCode(),
			"bytes", len(c.Response().Body()),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}
}
