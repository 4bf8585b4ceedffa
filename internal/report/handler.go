package report

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prom8eus-backend/internal/matchruns"
	"prom8eus-backend/internal/shared/server/middleware"
	"prom8eus-backend/internal/shared/server/respond"
)

// Handler serves rendered match reports.
type Handler struct {
	Runs *matchruns.Service
}

// NewHandler constructs a Handler.
func NewHandler(runs *matchruns.Service) *Handler {
	return &Handler{Runs: runs}
}

// RegisterRoutes attaches the report route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/matches/:id/report", h.getReport)
}

func (h *Handler) getReport(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	runID := c.Param("id")
	if runID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "match id is required", nil)
		return
	}

	run, err := h.Runs.Get(c.Request.Context(), userID, runID)
	if err != nil {
		switch {
		case errors.Is(err, matchruns.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "match not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch match", nil)
		}
		return
	}
	if run.Output == nil {
		respond.Error(c, http.StatusConflict, "report_unavailable", "match produced no output", nil)
		return
	}

	c.Header("Content-Type", "text/markdown; charset=utf-8")
	c.String(http.StatusOK, Render(run))
}
