package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dayfold/learnings-api/internal/application"
	"github.com/dayfold/learnings-api/internal/domain/repository"
	"github.com/dayfold/learnings-api/pkg/response"
)

// DuplicateEntryMessage is the fixed conflict message for uniqueness
// violations (taken username, repeated entry date).
const DuplicateEntryMessage = "Duplicate entry exists"

// WriteError is the single error-taxonomy-to-status translation applied by
// every handler. Anything unmapped is an infrastructure fault: logged with
// the request id, reported opaquely as 500.
func WriteError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, repository.ErrDuplicate):
		response.Error(c, http.StatusUnprocessableEntity, DuplicateEntryMessage, nil)
	default:
		logger.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		}).Error("request failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
