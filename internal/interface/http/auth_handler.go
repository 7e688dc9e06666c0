package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dayfold/learnings-api/internal/application"
	"github.com/dayfold/learnings-api/internal/domain/entity"
	"github.com/dayfold/learnings-api/internal/session"
	"github.com/dayfold/learnings-api/pkg/helpers"
	"github.com/dayfold/learnings-api/pkg/response"
	"github.com/dayfold/learnings-api/pkg/validation"
)

type AuthHandler struct {
	Svc        *application.AuthService
	Sessions   session.Store
	Resolver   *session.Resolver
	Logger     *logrus.Logger
	Cookies    *helpers.CookieManager
	SessionTTL time.Duration
}

func NewAuthHandler(svc *application.AuthService, sessions session.Store, resolver *session.Resolver, logger *logrus.Logger, cookies *helpers.CookieManager, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{Svc: svc, Sessions: sessions, Resolver: resolver, Logger: logger, Cookies: cookies, SessionTTL: sessionTTL}
}

// credentialsRequest is shared by login and signup: the original models both
// with the same username/password shape.
type credentialsRequest struct {
	Username string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required,max=255"`
}

// establishSession creates a server-side session for u and hands the opaque
// token to the client as an HttpOnly cookie.
func (h *AuthHandler) establishSession(c *gin.Context, u *entity.User) bool {
	token, err := h.Sessions.Create(c.Request.Context(), h.Resolver.Serialize(u))
	if err != nil {
		WriteError(c, h.Logger, err)
		return false
	}
	h.Cookies.SetSession(c, token, h.SessionTTL)
	return true
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Verify(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(c, h.Logger, err)
		return
	}
	if !h.establishSession(c, u) {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user_id": u.ID, "username": u.Username}, "logged in", nil)
}

// Signup POST /signup — success performs an implicit login.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(c, h.Logger, err)
		return
	}
	if !h.establishSession(c, u) {
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user_id": u.ID, "username": u.Username}, "new user created", nil)
}

// Logout GET /logout — destroys the session if one exists; a request without
// a session is still a 200, there is nothing to log out of.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(helpers.SessionCookieName); err == nil && token != "" {
		if err := h.Sessions.Destroy(c.Request.Context(), token); err != nil {
			h.Logger.WithError(err).Warn("session destroy failed")
		}
	}
	h.Cookies.ClearSession(c)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, "Successfully logged out", nil)
}
