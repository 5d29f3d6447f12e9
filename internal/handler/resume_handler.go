package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
	"github.com/beepdt/Ai-Resume-Builder/internal/service"
	"github.com/beepdt/Ai-Resume-Builder/internal/view"
)

type ResumeHandler struct {
	resumeService service.ResumeService
}

func NewResumeHandler(resumeService service.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		resumeService: resumeService,
	}
}

// currentUserID pulls the authenticated user out of the context set by
// AuthMiddleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthenticated.Error()})
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthenticated.Error()})
		return uuid.Nil, false
	}
	return userID, true
}

func resumeID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func respondError(c *gin.Context, err error, fallback string) {
	var validationErrs domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": validationErrs,
		})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

// ListResumes handles GET /api/v1/resumes
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resumes, err := h.resumeService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve resumes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resumes": resumes,
		"total":   len(resumes),
	})
}

// GetResume handles GET /api/v1/resumes/:id
func (h *ResumeHandler) GetResume(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := resumeID(c)
	if !ok {
		return
	}

	resume, err := h.resumeService.Get(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve resume")
		return
	}

	c.JSON(http.StatusOK, gin.H{"resume": resume})
}

// CreateResume handles POST /api/v1/resumes
func (h *ResumeHandler) CreateResume(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	resume, err := h.resumeService.Create(c.Request.Context(), userID, req.ToResume())
	if err != nil {
		respondError(c, err, "Failed to create resume")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"resume": resume})
}

// UpdateResume handles PUT /api/v1/resumes/:id
func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := resumeID(c)
	if !ok {
		return
	}

	var req UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	resume, err := h.resumeService.Update(c.Request.Context(), id, userID, req.ToPatch())
	if err != nil {
		respondError(c, err, "Failed to update resume")
		return
	}

	c.JSON(http.StatusOK, gin.H{"resume": resume})
}

// DeleteResume handles DELETE /api/v1/resumes/:id
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := resumeID(c)
	if !ok {
		return
	}

	if err := h.resumeService.Delete(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, "Failed to delete resume")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted successfully"})
}

// PreviewResume handles GET /api/v1/resumes/:id/preview
// Returns the rendered HTML document for on-screen display.
func (h *ResumeHandler) PreviewResume(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := resumeID(c)
	if !ok {
		return
	}

	html, err := h.resumeService.RenderHTML(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, "Failed to render resume")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// ExportResume handles GET /api/v1/resumes/:id/export
// Streams the PDF download.
func (h *ResumeHandler) ExportResume(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := resumeID(c)
	if !ok {
		return
	}

	pdf, err := h.resumeService.RenderPDF(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, "Failed to export resume")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GetResumeSections handles GET /api/v1/resumes/:id/sections
// Returns which document sections would render, in order, so clients can
// build outlines without fetching a full render.
func (h *ResumeHandler) GetResumeSections(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := resumeID(c)
	if !ok {
		return
	}

	resume, err := h.resumeService.Get(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve resume")
		return
	}

	sections := view.Sections(resume)
	c.JSON(http.StatusOK, gin.H{
		"sections": sections,
		"total":    len(sections),
	})
}
