package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dayfold/learnings-api/internal/container"
	handlers "github.com/dayfold/learnings-api/internal/interface/http"
	"github.com/dayfold/learnings-api/internal/interface/middleware"
)

// AuthModule wires the session lifecycle routes.
// Public: POST /login, POST /signup. GET /logout is also public on purpose:
// logging out without a session is a no-op, not a 401.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	signupLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.GET("/logout", m.Handler.Logout)
}
