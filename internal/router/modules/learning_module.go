package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dayfold/learnings-api/internal/container"
	handlers "github.com/dayfold/learnings-api/internal/interface/http"
	"github.com/dayfold/learnings-api/internal/interface/middleware"
	"github.com/dayfold/learnings-api/internal/session"
)

// LearningModule wires the journal routes behind the authentication gate.
type LearningModule struct {
	Handler  *handlers.LearningHandler
	Sessions session.Store
	Resolver *session.Resolver
}

func NewLearningModule(h *handlers.LearningHandler, sessions session.Store, resolver *session.Resolver) *LearningModule {
	return &LearningModule{Handler: h, Sessions: sessions, Resolver: resolver}
}

func (m *LearningModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Sessions, m.Resolver, container.GetLogger()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/learnings", m.Handler.Create)
		auth.GET("/learnings", m.Handler.List)
	}
}
