package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
)

// DraftHandler exposes the single working draft each user keeps while the
// form wizard is open.
type DraftHandler struct {
	drafts domain.DraftStore
}

func NewDraftHandler(drafts domain.DraftStore) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

// GetDraft handles GET /api/v1/drafts/resume
func (h *DraftHandler) GetDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	draft, err := h.drafts.Load(c.Request.Context(), userID)
	if errors.Is(err, domain.ErrMalformedRecord) {
		// An undecodable draft is not worth a failed page load; report it
		// as absent so the client starts fresh.
		c.JSON(http.StatusOK, gin.H{"draft": nil})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load draft"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SaveDraft handles PUT /api/v1/drafts/resume
// Drafts are only kept once the resume has a title, matching the autosave
// rule in the form wizard.
func (h *DraftHandler) SaveDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if req.Resume.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Draft requires a resume title"})
		return
	}

	req.Resume.UserID = userID
	req.Resume.NormalizeCollections()
	if err := h.drafts.Save(c.Request.Context(), userID, &req.Resume); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draft"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Draft saved"})
}

// ClearDraft handles DELETE /api/v1/drafts/resume
func (h *DraftHandler) ClearDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.drafts.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear draft"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Draft cleared"})
}
