package feedback

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prom8eus-backend/internal/shared/server/middleware"
	"prom8eus-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches feedback routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", h.submit)
	rg.GET("/feedback", h.list)
}

type submitRequest struct {
	SolutionID string `json:"solutionId"`
	MatchRunID string `json:"matchRunId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

func (h *Handler) submit(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	fb, err := h.Svc.Submit(c.Request.Context(), userID, SubmitInput{
		SolutionID: req.SolutionID,
		MatchRunID: req.MatchRunID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnknownSolution):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store feedback", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, fb)
}

func (h *Handler) list(c *gin.Context) {
	solutionID := c.Query("solutionId")
	if solutionID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "solutionId is required", nil)
		return
	}

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

	entries, err := h.Svc.ListBySolution(c.Request.Context(), solutionID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list feedback", nil)
		}
		return
	}

	if entries == nil {
		entries = []Feedback{}
	}
	respond.JSON(c, http.StatusOK, entries)
}
