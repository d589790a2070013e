package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/shared/server/middleware"
	"resumebuilder-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group. Extra
// guards (e.g. a rate limiter) run before the generation handler only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, createGuards ...gin.HandlerFunc) {
	chain := append(append([]gin.HandlerFunc{}, createGuards...), h.create)
	rg.POST("/resumes", chain...)
	rg.GET("/resumes", h.list)
	rg.DELETE("/resumes/:id", h.remove)
}

type createRequest struct {
	Prompt string `json:"prompt"`
	Title  string `json:"title"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Prompt == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "prompt is required", nil)
		return
	}

	resume, err := h.Svc.Generate(c.Request.Context(), userID, req.Title, req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "generation_failed", "Failed to generate resume", nil)
		}
		return
	}

	respond.Created(c, resume)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	list, err := h.Svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "list_failed", "Failed to fetch resumes", nil)
		return
	}

	respond.OK(c, list)
}

// remove responds 204 whether or not the resume existed or was owned
// by the caller. The store hides the difference on purpose.
func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume id", nil)
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id, userID); err != nil {
		respond.Error(c, http.StatusInternalServerError, "delete_failed", "Failed to delete resume", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
