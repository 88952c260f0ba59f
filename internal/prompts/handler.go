package prompts

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

// Handler exposes prompt management endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches prompt routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/prompts", h.list)
	rg.GET("/prompts/summary", h.summary)
	rg.GET("/prompts/:id", h.get)
	rg.PUT("/prompts/:id", h.update)
	rg.POST("/prompts/:id/reset", h.reset)
	rg.POST("/prompts/reset-all", h.resetAll)
}

type updateRequest struct {
	Content    *string `json:"content"`
	CustomName *string `json:"custom_name"`
	Enabled    *bool   `json:"enabled"`
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load prompts", nil)
		return
	}
	respond.OK(c, gin.H{"prompts": all})
}

func (h *Handler) summary(c *gin.Context) {
	summary, err := h.Svc.Summary(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load summary", nil)
		return
	}
	respond.OK(c, summary)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	prompt, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownPrompt):
			respond.Error(c, http.StatusNotFound, "not_found", fmt.Sprintf("prompt not found: %s", id), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load prompt", nil)
		}
		return
	}
	respond.OK(c, prompt)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), id, UpdatePatch{
		Content:    req.Content,
		CustomName: req.CustomName,
		Enabled:    req.Enabled,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownPrompt):
			respond.Error(c, http.StatusNotFound, "not_found", fmt.Sprintf("prompt not found: %s", id), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save prompt", nil)
		}
		return
	}
	respond.OK(c, updated)
}

func (h *Handler) reset(c *gin.Context) {
	id := c.Param("id")

	prompt, err := h.Svc.Reset(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownPrompt):
			respond.Error(c, http.StatusNotFound, "not_found", fmt.Sprintf("prompt not found: %s", id), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to reset prompt", nil)
		}
		return
	}
	respond.OK(c, gin.H{
		"prompt":  prompt,
		"message": fmt.Sprintf("Prompt '%s' reset to default", id),
	})
}

func (h *Handler) resetAll(c *gin.Context) {
	if err := h.Svc.ResetAll(c.Request.Context()); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to reset prompts", nil)
		return
	}
	respond.OK(c, gin.H{"message": "All prompts reset to defaults"})
}
