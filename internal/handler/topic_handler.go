package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/topic-advisor-api/internal/handler/dto"
	"github.com/yourusername/topic-advisor-api/internal/handler/helper"
	apperrors "github.com/yourusername/topic-advisor-api/internal/pkg/errors"
	"github.com/yourusername/topic-advisor-api/internal/service"
)

// TopicHandler serves the public topic catalog and the admin CRUD over it.
type TopicHandler struct {
	topicService *service.TopicService
}

// NewTopicHandler creates the topic handler.
func NewTopicHandler(topicService *service.TopicService) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

// List handles GET /api/topics.
func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.topicService.List()
	if err != nil {
		log.Printf("[TopicHandler] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load topics"})
		return
	}
	c.JSON(http.StatusOK, helper.ToTopicDTOs(topics))
}

// Search handles GET /api/topics/search?q=.
func (h *TopicHandler) Search(c *gin.Context) {
	topics, err := h.topicService.Search(c.Query("q"))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
			return
		}
		log.Printf("[TopicHandler] search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search topics"})
		return
	}
	c.JSON(http.StatusOK, helper.ToTopicDTOs(topics))
}

// Get handles GET /api/topics/:id.
func (h *TopicHandler) Get(c *gin.Context) {
	topic, err := h.topicService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		log.Printf("[TopicHandler] get failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load topic"})
		return
	}
	c.JSON(http.StatusOK, helper.ToTopicDTO(topic))
}

// AdminList handles GET /api/admin/topics: the whole catalog, uncapped.
func (h *TopicHandler) AdminList(c *gin.Context) {
	topics, err := h.topicService.AdminList()
	if err != nil {
		log.Printf("[TopicHandler] admin list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load topics"})
		return
	}
	c.JSON(http.StatusOK, helper.ToTopicDTOs(topics))
}

// Create handles POST /api/admin/topics.
func (h *TopicHandler) Create(c *gin.Context) {
	var req dto.TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "area and title are required"})
		return
	}

	topic, err := h.topicService.Create(req.Area, req.Title, req.Description, req.ImageURL)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "area and title are required"})
			return
		}
		log.Printf("[TopicHandler] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create topic"})
		return
	}

	c.JSON(http.StatusCreated, helper.ToTopicDTO(topic))
}

// Update handles PUT /api/admin/topics/:id.
func (h *TopicHandler) Update(c *gin.Context) {
	var req dto.TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "area and title are required"})
		return
	}

	topic, err := h.topicService.Update(c.Param("id"), req.Area, req.Title, req.Description, req.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "area and title are required"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		default:
			log.Printf("[TopicHandler] update failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update topic"})
		}
		return
	}

	c.JSON(http.StatusOK, helper.ToTopicDTO(topic))
}

// Delete handles DELETE /api/admin/topics/:id.
func (h *TopicHandler) Delete(c *gin.Context) {
	if err := h.topicService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		log.Printf("[TopicHandler] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete topic"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
