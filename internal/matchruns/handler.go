package matchruns

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prom8eus-backend/internal/shared/server/middleware"
	"prom8eus-backend/internal/shared/server/respond"
	"prom8eus-backend/internal/usage"
)

// Handler wires HTTP handlers to the match run service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches match routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/match", h.runMatch)
	rg.GET("/matches", h.listMatches)
	rg.GET("/matches/:id", h.getMatch)
}

func (h *Handler) runMatch(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	run, err := h.Svc.Run(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrUnknownSolutions):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, usage.ErrLimitReached):
			respond.Error(c, http.StatusTooManyRequests, "limit_reached", "You've reached your match limit. Upgrade your plan to continue.", []map[string]string{
				{"field": "usage", "issue": "limit_reached"},
			})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to run match", nil)
		}
		return
	}

	c.Set("matchId", run.ID)
	c.Set("cacheHit", run.CacheHit)
	respond.JSON(c, http.StatusOK, gin.H{
		"matchId":      run.ID,
		"cacheHit":     run.CacheHit,
		"durationMs":   run.DurationMS,
		"result":       run.Output.Result,
		"combinations": run.Output.Combinations,
		"roadmap":      run.Output.Roadmap,
	})
}

func (h *Handler) getMatch(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	runID := c.Param("id")
	if runID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "match id is required", nil)
		return
	}

	run, err := h.Svc.Get(c.Request.Context(), userID, runID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "match not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch match", nil)
		}
		return
	}

	c.Set("matchId", run.ID)
	respond.JSON(c, http.StatusOK, run)
}

func (h *Handler) listMatches(c *gin.Context) {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
			return
		}
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	runs, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list matches", nil)
		return
	}

	resp := make([]gin.H, 0, len(runs))
	for _, r := range runs {
		item := gin.H{
			"matchId":      r.ID,
			"status":       r.Status,
			"createdAt":    r.CreatedAt,
			"subtaskCount": r.SubtaskCount,
			"poolSize":     r.PoolSize,
			"cacheHit":     r.CacheHit,
			"durationMs":   r.DurationMS,
		}
		if r.Output != nil {
			item["matchedCount"] = r.Output.Result.Stats.MatchedCount
			item["averageScore"] = r.Output.Result.Stats.AverageScore
		}
		resp = append(resp, item)
	}

	respond.JSON(c, http.StatusOK, resp)
}
