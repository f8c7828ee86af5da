package app

import (
	"context"
	"log"
	"time"

	"synerh/internal/config"
	"synerh/internal/database"
	dbpostgres "synerh/internal/database/postgres"
	"synerh/internal/infrastructure/cache"
	"synerh/internal/infrastructure/gemini"
	persistence "synerh/internal/infrastructure/persistence/postgres"
	"synerh/internal/pkg/jwt"
	"synerh/internal/repository/memory"
	"synerh/internal/usecase"
	ucassistant "synerh/internal/usecase/assistant"
	ucauth "synerh/internal/usecase/auth"
	ucprofile "synerh/internal/usecase/profile"
	"synerh/internal/ws"
)

// Container wires every service of the platform: the durable user-record
// store, the in-memory catalog stores seeded at startup, the assistant
// gateway and the websocket event hub.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	JWT         jwt.Service
	Auth        usecase.AuthUsecase
	Catalog     *usecase.Catalog
	Profiles    *ucprofile.Service
	Preferences *usecase.PreferencesUsecase
	Assistant   *ucassistant.Service
	WSHandler   *ws.Handler
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := persistence.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewCatalogNotifier(hub)

	userRepo := persistence.NewUserRepository(db)
	profileRepo := persistence.NewProfileRepository(db)
	questStore := memory.NewQuestStore(memory.SeedQuests(time.Now().UTC()))
	courseStore := memory.NewCourseStore(memory.SeedCourses())
	chatLog := memory.NewChatLog()

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authSvc := ucauth.NewService(userRepo, profileRepo, logger)
	geminiClient := gemini.NewClient(cfg.Gemini)

	return &Container{
		Config:      cfg,
		DB:          db,
		Cache:       redisCache,
		Hub:         hub,
		JWT:         jwtSvc,
		Auth:        usecase.NewAuthUsecase(authSvc, jwtSvc),
		Catalog:     usecase.NewCatalog(questStore, courseStore, notifier, logger),
		Profiles:    ucprofile.NewService(profileRepo, redisCache, logger),
		Preferences: usecase.NewPreferencesUsecase(redisCache, logger),
		Assistant:   ucassistant.NewService(geminiClient, chatLog, logger),
		WSHandler:   ws.NewHandler(hub, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
