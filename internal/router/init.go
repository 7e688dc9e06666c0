package router

import (
	"github.com/dayfold/learnings-api/internal/application"
	"github.com/dayfold/learnings-api/internal/container"
	pginfra "github.com/dayfold/learnings-api/internal/infrastructure/postgres"
	handlers "github.com/dayfold/learnings-api/internal/interface/http"
	"github.com/dayfold/learnings-api/internal/router/modules"
	"github.com/dayfold/learnings-api/internal/session"
	"github.com/dayfold/learnings-api/pkg/helpers"
)

// InitModules builds the dependency graph from container singletons and
// registers every feature module with the router registry. Called once
// during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	learningRepo := pginfra.NewLearningRepository(container.GetPGPool())

	sessions := session.NewRedisStore(container.GetRedis(), cfg.SessionTTL)
	resolver := session.NewResolver(userRepo)
	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	authSvc := application.NewAuthService(userRepo, logger, container.GetRabbitPub(), cfg.MailSendEnabled)
	learningSvc := application.NewLearningService(learningRepo, logger)

	authHandler := handlers.NewAuthHandler(authSvc, sessions, resolver, logger, cookies, cfg.SessionTTL)
	learningHandler := handlers.NewLearningHandler(learningSvc, logger)
	healthHandler := handlers.NewHealthHandler(container.GetPGPool(), container.GetRedis())

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewLearningModule(learningHandler, sessions, resolver))
	r.Add(modules.NewHealthModule(healthHandler))
}
