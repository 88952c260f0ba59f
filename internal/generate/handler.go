package generate

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/llm"
	"resume-builder/internal/prompts"
	"resume-builder/internal/shared/server/respond"
)

// Handler exposes generation endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate/cover-letter", h.coverLetter)
	rg.POST("/generate/outreach", h.outreach)
	rg.POST("/generate/sections/summary", h.regenerateSummary)
	rg.POST("/generate/sections/experience", h.regenerateExperience)
	rg.POST("/generate/sections/project", h.regenerateProject)
	rg.POST("/generate/sections/skills", h.regenerateSkills)
}

type letterRequest struct {
	ResumeData     map[string]any `json:"resume_data"`
	JobDescription string         `json:"job_description"`
	Language       string         `json:"language"`
}

type summaryRequest struct {
	CurrentSummary string `json:"current_summary"`
	Context        string `json:"context"`
	JobDescription string `json:"job_description"`
}

type experienceRequest struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Duration       string   `json:"duration"`
	Description    []string `json:"description"`
	Context        string   `json:"context"`
	JobDescription string   `json:"job_description"`
}

type projectRequest struct {
	Title          string   `json:"title"`
	Technologies   []string `json:"technologies"`
	Description    []string `json:"description"`
	Context        string   `json:"context"`
	JobDescription string   `json:"job_description"`
}

type skillsRequest struct {
	CurrentSkills  []string `json:"current_skills"`
	Context        string   `json:"context"`
	JobDescription string   `json:"job_description"`
}

func (h *Handler) coverLetter(c *gin.Context) {
	var req letterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}
	if req.JobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required", nil)
		return
	}

	letter, err := h.Svc.CoverLetter(c.Request.Context(), req.ResumeData, req.JobDescription, req.Language)
	if err != nil {
		h.generationError(c, err, "failed to generate cover letter")
		return
	}
	respond.OK(c, gin.H{"cover_letter": letter})
}

func (h *Handler) outreach(c *gin.Context) {
	var req letterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}
	if req.JobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required", nil)
		return
	}

	message, err := h.Svc.OutreachMessage(c.Request.Context(), req.ResumeData, req.JobDescription, req.Language)
	if err != nil {
		h.generationError(c, err, "failed to generate outreach message")
		return
	}
	respond.OK(c, gin.H{"message": message})
}

func (h *Handler) regenerateSummary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}
	if req.CurrentSummary == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "current_summary is required", nil)
		return
	}

	summary, err := h.Svc.RegenerateSummary(c.Request.Context(), req.CurrentSummary, req.Context, req.JobDescription)
	if err != nil {
		h.generationError(c, err, "failed to regenerate summary")
		return
	}
	respond.OK(c, gin.H{"summary": summary})
}

func (h *Handler) regenerateExperience(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}

	description, err := h.Svc.RegenerateExperience(c.Request.Context(), ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Duration:    req.Duration,
		Description: req.Description,
		Context:     req.Context,
		JobDesc:     req.JobDescription,
	})
	if err != nil {
		h.generationError(c, err, "failed to regenerate experience")
		return
	}
	respond.OK(c, gin.H{"description": description})
}

func (h *Handler) regenerateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}

	description, err := h.Svc.RegenerateProject(c.Request.Context(), ProjectInput{
		Title:        req.Title,
		Technologies: req.Technologies,
		Description:  req.Description,
		Context:      req.Context,
		JobDesc:      req.JobDescription,
	})
	if err != nil {
		h.generationError(c, err, "failed to regenerate project")
		return
	}
	respond.OK(c, gin.H{"description": description})
}

func (h *Handler) regenerateSkills(c *gin.Context) {
	var req skillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}

	skills, err := h.Svc.RegenerateSkills(c.Request.Context(), req.CurrentSkills, req.Context, req.JobDescription)
	if err != nil {
		h.generationError(c, err, "failed to regenerate skills")
		return
	}
	respond.OK(c, gin.H{"skills": skills})
}

func (h *Handler) generationError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, prompts.ErrUnknownPrompt):
		respond.Error(c, http.StatusNotFound, "not_found", message, nil)
	case errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusServiceUnavailable, "llm_unavailable", "completion provider is not configured", nil)
	default:
		respond.Error(c, http.StatusBadGateway, "llm_error", message, nil)
	}
}
