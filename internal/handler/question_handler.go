package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/topic-advisor-api/internal/handler/dto"
	"github.com/yourusername/topic-advisor-api/internal/service/recommender"
)

// QuestionHandler serves the fixed questionnaire.
type QuestionHandler struct{}

// NewQuestionHandler creates the question handler.
func NewQuestionHandler() *QuestionHandler {
	return &QuestionHandler{}
}

// List handles GET /api/questions.
func (h *QuestionHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.QuestionsResponse{
		Questions: recommender.Questions,
		Choices:   recommender.Choices,
	})
}
