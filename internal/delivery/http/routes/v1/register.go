package v1

import (
	"synerh/internal/config"
	"synerh/internal/delivery/http/handler"
	"synerh/internal/delivery/http/middleware"
	"synerh/internal/pkg/jwt"
	"synerh/internal/usecase"
	ucassistant "synerh/internal/usecase/assistant"
	ucprofile "synerh/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the constructed services into route registration.
type Deps struct {
	Config      config.Config
	JWT         jwt.Service
	Auth        usecase.AuthUsecase
	Catalog     *usecase.Catalog
	Profiles    *ucprofile.Service
	Preferences *usecase.PreferencesUsecase
	Assistant   *ucassistant.Service
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(d.JWT)

	authHandler := handler.NewAuthHandler(d.Auth, d.Profiles)
	userHandler := handler.NewUserHandler(d.Profiles)
	questHandler := handler.NewQuestHandler(d.Catalog)
	courseHandler := handler.NewCourseHandler(d.Catalog)
	recHandler := handler.NewRecommendationHandler(d.Catalog)
	prefsHandler := handler.NewPreferencesHandler(d.Preferences)
	assistantHandler := handler.NewAssistantHandler(d.Assistant, d.Profiles)
	contentHandler := handler.NewContentHandler()

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	contentGroup := r.Group("/content")
	contentHandler.RegisterRoutes(contentGroup)

	protected := r.Group("", authMw.Middleware())

	authHandler.RegisterProtectedRoutes(protected.Group("/auth"))
	userHandler.RegisterRoutes(protected.Group("/users"))
	prefsHandler.RegisterRoutes(protected.Group("/users/me/preferences"))
	questHandler.RegisterRoutes(protected.Group("/quests"))
	courseHandler.RegisterRoutes(protected.Group("/courses"))
	recHandler.RegisterRoutes(protected)
	assistantHandler.RegisterRoutes(protected.Group("/assistant"))
}
