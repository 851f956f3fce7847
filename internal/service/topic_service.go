package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
	"github.com/yourusername/topic-advisor-api/internal/domain/repository"
	apperrors "github.com/yourusername/topic-advisor-api/internal/pkg/errors"
)

// Result set caps for the public catalog.
const (
	maxBrowseTopics = 500
	maxSearchTopics = 50
)

// Cache keys. Search entries embed the catalog version, so deleting the
// version key on an admin write orphans every cached search result at
// once; orphans age out by TTL.
const (
	topicListCacheKey    = "topics:public"
	topicVersionKey      = "topics:version"
	topicSearchKeyPrefix = "topics:search"
)

// TopicService serves the public topic catalog and the admin CRUD over
// it. Public listing goes through the read-through cache; admin writes
// invalidate it.
type TopicService struct {
	topicRepo repository.TopicRepository
	cache     repository.CacheRepository
	cacheTTL  time.Duration
}

// NewTopicService creates the topic service.
func NewTopicService(topicRepo repository.TopicRepository, cache repository.CacheRepository, cacheTTL time.Duration) (*TopicService, error) {
	if topicRepo == nil || cache == nil {
		return nil, fmt.Errorf("topic service requires topic repository and cache")
	}
	return &TopicService{
		topicRepo: topicRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}, nil
}

// List returns the public catalog, newest first, capped. Cache failures
// are logged and fall through to the database.
func (s *TopicService) List() ([]entity.Topic, error) {
	var cached []entity.Topic
	err := s.cache.GetJSON(topicListCacheKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[TopicService] cache read failed: %v", err)
	}

	topics, err := s.topicRepo.List(maxBrowseTopics)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(topicListCacheKey, topics, s.cacheTTL); err != nil {
		log.Printf("[TopicService] cache write failed: %v", err)
	}
	return topics, nil
}

// Search matches title, description or area by case-insensitive
// substring. An empty query is ErrValidation. Results are cached per
// query under the current catalog version; cache failures are logged and
// fall through to the database.
func (s *TopicService) Search(query string) ([]entity.Topic, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.ErrValidation
	}

	key, cacheable := s.searchCacheKey(query)
	if cacheable {
		var cached []entity.Topic
		err := s.cache.GetJSON(key, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[TopicService] search cache read failed: %v", err)
		}
	}

	topics, err := s.topicRepo.Search(query, maxSearchTopics)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.SetJSON(key, topics, s.cacheTTL); err != nil {
			log.Printf("[TopicService] search cache write failed: %v", err)
		}
	}
	return topics, nil
}

// searchCacheKey derives the per-query cache key, scoped to the current
// catalog version. The matching is case-insensitive, so the query is
// lowercased before keying. Returns false when the version cannot be
// read or minted, in which case the request skips the cache.
func (s *TopicService) searchCacheKey(query string) (string, bool) {
	var version int64
	err := s.cache.GetJSON(topicVersionKey, &version)
	if errors.Is(err, apperrors.ErrNotFound) {
		version = time.Now().UnixNano()
		if err := s.cache.SetJSON(topicVersionKey, version, 0); err != nil {
			log.Printf("[TopicService] cache version write failed: %v", err)
			return "", false
		}
	} else if err != nil {
		log.Printf("[TopicService] cache version read failed: %v", err)
		return "", false
	}
	return fmt.Sprintf("%s:%d:%s", topicSearchKeyPrefix, version, strings.ToLower(query)), true
}

// Get returns one topic by id.
func (s *TopicService) Get(id string) (*entity.Topic, error) {
	return s.topicRepo.GetByID(id)
}

// AdminList returns the whole catalog for the admin console, uncapped and
// uncached.
func (s *TopicService) AdminList() ([]entity.Topic, error) {
	return s.topicRepo.List(0)
}

// Create adds a catalog entry. Area and title are required.
func (s *TopicService) Create(area, title string, description, imageURL *string) (*entity.Topic, error) {
	if area == "" || title == "" {
		return nil, apperrors.ErrValidation
	}

	topic := &entity.Topic{
		ID:          uuid.NewString(),
		Area:        area,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := s.topicRepo.Create(topic); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return topic, nil
}

// Update replaces the editable fields of a catalog entry.
func (s *TopicService) Update(id, area, title string, description, imageURL *string) (*entity.Topic, error) {
	if area == "" || title == "" {
		return nil, apperrors.ErrValidation
	}

	topic := &entity.Topic{
		ID:          id,
		Area:        area,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := s.topicRepo.Update(topic); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return topic, nil
}

// Delete removes a catalog entry.
func (s *TopicService) Delete(id string) error {
	if err := s.topicRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *TopicService) invalidateCache() {
	for _, key := range []string{topicListCacheKey, topicVersionKey} {
		if err := s.cache.Delete(key); err != nil {
			log.Printf("[TopicService] cache invalidation failed for %s: %v", key, err)
		}
	}
}
