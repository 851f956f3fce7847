package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
	apperrors "github.com/yourusername/topic-advisor-api/internal/pkg/errors"
)

// TopicRepo implements repository.TopicRepository.
type TopicRepo struct {
	db *gorm.DB
}

// NewTopicRepo creates a new topic repository.
func NewTopicRepo(db *gorm.DB) *TopicRepo {
	return &TopicRepo{db: db}
}

// Create inserts a new topic.
func (r *TopicRepo) Create(topic *entity.Topic) error {
	return r.db.Create(topic).Error
}

// GetByID returns a topic by id.
func (r *TopicRepo) GetByID(id string) (*entity.Topic, error) {
	var topic entity.Topic
	err := r.db.Where("id = ?", id).First(&topic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &topic, nil
}

// List returns topics newest first. A limit <= 0 returns all rows.
func (r *TopicRepo) List(limit int) ([]entity.Topic, error) {
	var topics []entity.Topic
	tx := r.db.Order("created_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err := tx.Find(&topics).Error
	return topics, err
}

// Search matches title, description or area with case-insensitive
// substring (ILIKE) OR semantics, newest first.
func (r *TopicRepo) Search(query string, limit int) ([]entity.Topic, error) {
	var topics []entity.Topic
	term := "%" + query + "%"
	err := r.db.Where("title ILIKE ? OR description ILIKE ? OR area ILIKE ?", term, term, term).
		Order("created_at DESC").
		Limit(limit).
		Find(&topics).Error
	return topics, err
}

// Update persists the editable fields of an existing topic and reloads the
// row so timestamps reflect the stored values.
func (r *TopicRepo) Update(topic *entity.Topic) error {
	result := r.db.Model(&entity.Topic{}).
		Where("id = ?", topic.ID).
		Updates(map[string]interface{}{
			"area":        topic.Area,
			"title":       topic.Title,
			"description": topic.Description,
			"image_url":   topic.ImageURL,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return r.db.Where("id = ?", topic.ID).First(topic).Error
}

// Delete removes a topic by id.
func (r *TopicRepo) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&entity.Topic{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
