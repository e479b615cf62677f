package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const requestIDKey = "requestid"

// multipartOverhead is added to the upload cap for boundaries, headers and
// the issuer field, so the handler can answer oversized files itself.
const multipartOverhead = 1 << 20

// ServerOptions configures the fiber application.
type ServerOptions struct {
	CORSAllowOrigins string
	EnableMetrics    bool
}

// NewApp builds the fiber application with middleware and all routes.
func NewApp(h *Handler, opts ServerOptions) *fiber.App {
	bodyLimit := fiber.DefaultBodyLimit
	if h.MaxUploadBytes > 0 {
		bodyLimit = h.MaxUploadBytes + multipartOverhead
	}

	app := fiber.New(fiber.Config{
		AppName:               "card-statement-parser " + h.Version,
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{ContextKey: requestIDKey}))
	app.Use(requestLogger(h))

	origins := opts.CORSAllowOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "POST, GET, OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	h.RegisterRoutes(app)
	if opts.EnableMetrics && h.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(h.Metrics.Handler()))
	}
	return app
}

// RegisterRoutes sets up the API routes.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/health", h.HandleHealth)
	api.Post("/parse", h.observe, h.HandleParse)
	api.Get("/statements", h.HandleListStatements)
	api.Get("/statements/:id", h.HandleGetStatement)
}

// observe records the status and latency of a parse request.
func (h *Handler) observe(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if h.Metrics != nil {
		code := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		} else if err != nil {
			code = fiber.StatusInternalServerError
		}
		h.Metrics.Request(code, time.Since(start))
	}
	return err
}

func requestLogger(h *Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		h.logger(c).Info("request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
			slog.Duration("latency", time.Since(start)))
		return err
	}
}

// errorHandler renders framework errors (404, 405, 413, recovered panics)
// in the same shape as handler errors.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error."
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return fail(c, code, msg)
}
