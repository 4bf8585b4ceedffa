package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prom8eus-backend/internal/shared/server/respond"
)

const maxIngestBatch = 1000

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/solutions", h.list)
	rg.GET("/solutions/:id", h.get)
	rg.PUT("/solutions", h.ingest)
}

// RegisterDevRoutes attaches dev-only catalog routes.
func (h *Handler) RegisterDevRoutes(rg *gin.RouterGroup) {
	rg.POST("/catalog/seed", h.seed)
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	f := Filter{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Limit:    limit,
		Offset:   offset,
	}
	if f.Type != "" && f.Type != TypeWorkflow && f.Type != TypeAgent {
		respond.Error(c, http.StatusBadRequest, "validation_error", "type must be workflow or agent", nil)
		return
	}
	solutions, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list solutions", nil)
		return
	}
	respond.OK(c, gin.H{"solutions": solutions, "count": len(solutions)})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "solution id is required", nil)
		return
	}
	sol, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "solution not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch solution", nil)
		return
	}
	respond.OK(c, sol)
}

type ingestRequest struct {
	Solutions []Solution `json:"solutions"`
}

func (h *Handler) ingest(c *gin.Context) {
	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.Solutions) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "solutions must not be empty", nil)
		return
	}
	if len(req.Solutions) > maxIngestBatch {
		respond.Error(c, http.StatusBadRequest, "validation_error", "too many solutions in one batch", nil)
		return
	}
	result, err := h.Svc.Ingest(c.Request.Context(), req.Solutions)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store solutions", nil)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) seed(c *gin.Context) {
	n, err := h.Svc.Seed(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to seed catalog", nil)
		return
	}
	respond.OK(c, gin.H{"seeded": n})
}
