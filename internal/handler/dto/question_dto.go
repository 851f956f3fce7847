package dto

import (
	"github.com/yourusername/topic-advisor-api/internal/service/recommender"
)

// QuestionsResponse is the fixed questionnaire payload.
type QuestionsResponse struct {
	Questions []recommender.Question                `json:"questions"`
	Choices   map[string][]recommender.ChoiceOption `json:"choices"`
}
