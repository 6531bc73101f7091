package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/aspk74/auto-apply/internal/delivery/http/handler"
	"github.com/aspk74/auto-apply/internal/delivery/http/middleware"
	"github.com/aspk74/auto-apply/internal/pkg/response"
)

type App struct {
	Fiber *fiber.App
}

// New wires the read-only dashboard: middleware, health, and the
// analytics routes under /api/v1.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{})

	f.Use(middleware.ErrorHandler())
	f.Use(middleware.AccessLog())

	f.Get("/health", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
	})

	api := f.Group("/api/v1")
	handler.NewAnalyticsHandler(c.Analytics).RegisterRoutes(api)

	return &App{Fiber: f}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
