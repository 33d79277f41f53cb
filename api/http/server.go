package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/artem13815/qagen/api/http/middleware"
	"github.com/artem13815/qagen/api/http/presenter"
	"github.com/artem13815/qagen/pkg/logger"
)

// NewApp creates the Fiber app with JSON error rendering, request logging and
// panic recovery installed.
func NewApp(log *logger.Logger, bodyLimit int) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "qagen",
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})
	app.Use(middleware.RequestLog(log))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error("panic recovered", "request_id", middleware.RequestID(c), "panic", e)
		},
	}))
	return app
}

func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Internal server error."
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		} else {
			log.Error("unhandled error", "request_id", middleware.RequestID(c), "path", c.Path(), "error", err)
		}
		return presenter.Error(c, code, msg)
	}
}
