package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/topic-advisor-api/internal/handler/dto"
	"github.com/yourusername/topic-advisor-api/internal/handler/helper"
	"github.com/yourusername/topic-advisor-api/internal/middleware"
	apperrors "github.com/yourusername/topic-advisor-api/internal/pkg/errors"
	"github.com/yourusername/topic-advisor-api/internal/service"
)

// SavedTopicHandler serves per-user bookmarks.
type SavedTopicHandler struct {
	savedTopicService *service.SavedTopicService
}

// NewSavedTopicHandler creates the saved-topic handler.
func NewSavedTopicHandler(savedTopicService *service.SavedTopicService) *SavedTopicHandler {
	return &SavedTopicHandler{savedTopicService: savedTopicService}
}

// List handles GET /api/saved-topics.
func (h *SavedTopicHandler) List(c *gin.Context) {
	saved, err := h.savedTopicService.List(middleware.UserID(c))
	if err != nil {
		log.Printf("[SavedTopicHandler] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load saved topics"})
		return
	}
	c.JSON(http.StatusOK, helper.ToSavedTopicDTOs(saved))
}

// Create handles POST /api/saved-topics.
func (h *SavedTopicHandler) Create(c *gin.Context) {
	var req dto.SaveTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	saved, err := h.savedTopicService.Create(middleware.UserID(c), req.Topic, req.Label)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
			return
		}
		log.Printf("[SavedTopicHandler] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save topic"})
		return
	}

	c.JSON(http.StatusOK, helper.ToSavedTopicDTO(saved))
}

// Delete handles DELETE /api/saved-topics/:id. Deleting a missing or
// foreign bookmark still reports ok, matching the list-refresh flow the
// front-end drives this with.
func (h *SavedTopicHandler) Delete(c *gin.Context) {
	if err := h.savedTopicService.Delete(c.Param("id"), middleware.UserID(c)); err != nil {
		log.Printf("[SavedTopicHandler] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete saved topic"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
