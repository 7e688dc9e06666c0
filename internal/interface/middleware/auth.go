package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dayfold/learnings-api/internal/session"
	"github.com/dayfold/learnings-api/pkg/helpers"
	"github.com/dayfold/learnings-api/pkg/response"
)

// Context keys set by Auth on success.
const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
)

// Auth is the authentication gate: a request passes only when its session
// cookie maps to a live session whose principal still resolves to a user.
// Everything else short-circuits with a 401 JSON response, no redirects.
// Backend failures are kept distinct from missing credentials: logged with
// the request id, surfaced as an opaque 500.
func Auth(sessions session.Store, resolver *session.Resolver, logger *logrus.Logger) gin.HandlerFunc {
	serverError := func(c *gin.Context, err error, stage string) {
		logger.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
			"stage":      stage,
		}).Error("authentication gate failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
	}

	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			response.Error(c, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		rec, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				response.Error(c, http.StatusUnauthorized, "authentication required", nil)
				return
			}
			serverError(c, err, "session lookup")
			return
		}

		u, err := resolver.Deserialize(c.Request.Context(), rec)
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				// Principal no longer exists; the session is dead weight.
				_ = sessions.Destroy(c.Request.Context(), token)
				response.Error(c, http.StatusUnauthorized, "authentication required", nil)
				return
			}
			serverError(c, err, "principal resolve")
			return
		}

		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUsernameKey, u.Username)
		c.Next()
	}
}
