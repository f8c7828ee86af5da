package app

import (
	"fmt"
	"log"
	"strings"

	"synerh/internal/config"
	"synerh/internal/delivery/http/middleware"
	"synerh/internal/delivery/http/routes"
	v1 "synerh/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(cfg config.Config, logger *log.Logger) (*App, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)

	registry := routes.NewRegistry(v1.Deps{
		Config:      cfg,
		JWT:         container.JWT,
		Auth:        container.Auth,
		Catalog:     container.Catalog,
		Profiles:    container.Profiles,
		Preferences: container.Preferences,
		Assistant:   container.Assistant,
	})
	registry.Register(f)

	f.Get("/ws/catalog", container.WSHandler.HandleCatalogWS)

	return &App{Fiber: f, Container: container}, nil
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	app, err := New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return app, app.Container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
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
