package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dayfold/learnings-api/internal/application"
	"github.com/dayfold/learnings-api/internal/domain/entity"
	"github.com/dayfold/learnings-api/internal/interface/middleware"
	"github.com/dayfold/learnings-api/pkg/response"
	"github.com/dayfold/learnings-api/pkg/validation"
)

// dateLayout is the canonical calendar-date format for entry dates.
const dateLayout = "2006-01-02"

var errBadDate = errors.New("bad date")

type LearningHandler struct {
	Svc    *application.LearningService
	Logger *logrus.Logger
}

func NewLearningHandler(svc *application.LearningService, logger *logrus.Logger) *LearningHandler {
	return &LearningHandler{Svc: svc, Logger: logger}
}

type createLearningRequest struct {
	Learning string `json:"learning" binding:"required,max=280"`
	Date     string `json:"date" binding:"required"`
}

type learningResponse struct {
	ID        string    `json:"id"`
	Learning  string    `json:"learning"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

func toLearningResponse(l *entity.Learning) learningResponse {
	return learningResponse{
		ID:        l.ID,
		Learning:  l.Learning,
		Date:      l.Date.Format(dateLayout),
		CreatedAt: l.CreatedAt,
	}
}

// parseEntryDate accepts a bare calendar date, or a full timestamp truncated
// to its date.
func parseEntryDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Truncate(24 * time.Hour), nil
	}
	return time.Time{}, errBadDate
}

// Create POST /learnings
func (h *LearningHandler) Create(c *gin.Context) {
	var req createLearningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	date, err := parseEntryDate(req.Date)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"date": "must be a valid date"})
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	l, err := h.Svc.Create(c.Request.Context(), uid, req.Learning, date)
	if err != nil {
		WriteError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toLearningResponse(l), "stored the learning", nil)
}

// List GET /learnings?page=N
func (h *LearningHandler) List(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	learnings, err := h.Svc.List(c.Request.Context(), uid, page)
	if err != nil {
		WriteError(c, h.Logger, err)
		return
	}

	out := make([]learningResponse, 0, len(learnings))
	for i := range learnings {
		out = append(out, toLearningResponse(&learnings[i]))
	}
	response.Success(c, http.StatusOK, out, "learnings", map[string]any{"page": page, "page_size": application.PageSize})
}
