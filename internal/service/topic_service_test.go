package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
	apperrors "github.com/yourusername/topic-advisor-api/internal/pkg/errors"
)

// MockTopicRepository implements repository.TopicRepository.
type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) Create(topic *entity.Topic) error {
	args := m.Called(topic)
	return args.Error(0)
}

func (m *MockTopicRepository) GetByID(id string) (*entity.Topic, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Topic), args.Error(1)
}

func (m *MockTopicRepository) List(limit int) ([]entity.Topic, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Topic), args.Error(1)
}

func (m *MockTopicRepository) Search(query string, limit int) ([]entity.Topic, error) {
	args := m.Called(query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Topic), args.Error(1)
}

func (m *MockTopicRepository) Update(topic *entity.Topic) error {
	args := m.Called(topic)
	return args.Error(0)
}

func (m *MockTopicRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCacheRepository implements repository.CacheRepository.
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	if args.Error(0) == nil {
		switch v := args.Get(1).(type) {
		case []entity.Topic:
			*dest.(*[]entity.Topic) = v
		case int64:
			*dest.(*int64) = v
		}
	}
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newTestTopicService(t *testing.T, repo *MockTopicRepository, cache *MockCacheRepository) *TopicService {
	t.Helper()
	svc, err := NewTopicService(repo, cache, time.Minute)
	require.NoError(t, err)
	return svc
}

func TestTopicListCacheHit(t *testing.T) {
	repo := new(MockTopicRepository)
	cache := new(MockCacheRepository)
	svc := newTestTopicService(t, repo, cache)

	cached := []entity.Topic{{ID: "t1", Area: "AI", Title: "Cached"}}
	cache.On("GetJSON", topicListCacheKey, mock.Anything).Return(nil, cached)

	topics, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, cached, topics)
	repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestTopicListCacheMiss(t *testing.T) {
	repo := new(MockTopicRepository)
	cache := new(MockCacheRepository)
	svc := newTestTopicService(t, repo, cache)

	fresh := []entity.Topic{{ID: "t1", Area: "AI", Title: "Fresh"}}
	cache.On("GetJSON", topicListCacheKey, mock.Anything).Return(apperrors.ErrNotFound, nil)
	repo.On("List", maxBrowseTopics).Return(fresh, nil)
	cache.On("SetJSON", topicListCacheKey, fresh, time.Minute).Return(nil)

	topics, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, fresh, topics)
	cache.AssertExpectations(t)
}

// A broken cache must degrade to the database, not fail the request.
func TestTopicListCacheFailureFallsThrough(t *testing.T) {
	repo := new(MockTopicRepository)
	cache := new(MockCacheRepository)
	svc := newTestTopicService(t, repo, cache)

	fresh := []entity.Topic{{ID: "t1", Area: "AI", Title: "Fresh"}}
	cache.On("GetJSON", topicListCacheKey, mock.Anything).Return(errors.New("redis down"), nil)
	repo.On("List", maxBrowseTopics).Return(fresh, nil)
	cache.On("SetJSON", topicListCacheKey, fresh, time.Minute).Return(errors.New("redis down"))

	topics, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, fresh, topics)
}

func TestTopicSearch(t *testing.T) {
	repo := new(MockTopicRepository)
	cache := new(MockCacheRepository)
	svc := newTestTopicService(t, repo, cache)

	cache.On("GetJSON", topicVersionKey, mock.Anything).Return(nil, int64(7))
	cache.On("GetJSON", "topics:search:7:federated", mock.Anything).Return(apperrors.ErrNotFound, nil)
	repo.On("Search", "federated", maxSearchTopics).Return([]entity.Topic{}, nil)
	cache.On("SetJSON", "topics:search:7:federated", mock.Anything, time.Minute).Return(nil)

	_, err := svc.Search("  federated  ")
	require.NoError(t, err)
	repo.AssertCalled(t, "Search", "federated", maxSearchTopics)
}

func TestTopicSearchCacheHit(t *testing.T) {
	repo := new(MockTopicRepository)
	cache := new(MockCacheRepository)
	svc := newTestTopicService(t, repo, cache)

	cached := []entity.Topic{{ID: "t1", Area: "CLOUD", Title: "Kubernetes Basics"}}
	cache.On("GetJSON", topicVersionKey, mock.Anything).Return(nil, int64(7))
	cache.On("GetJSON", "topics:search:7:kuber", mock.Anything).Return(nil, cached)

	topics, err := svc.Search("Kuber")
	require.NoError(t, err)
	assert.Equal(t, cached, topics)
	repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestTopicSearchCacheMiss(t *testing.T) {
	repo := new(MockTopicRepository)
	cache := new(MockCacheRepository)
	svc := newTestTopicService(t, repo, cache)

	fresh := []entity.Topic{{ID: "t1", Area: "CLOUD", Title: "Kubernetes Basics"}}
	cache.On("GetJSON", topicVersionKey, mock.Anything).Return(nil, int64(7))
	cache.On("GetJSON", "topics:search:7:kuber", mock.Anything).Return(apperrors.ErrNotFound, nil)
	repo.On("Search", "kuber", maxSearchTopics).Return(fresh, nil)
	cache.On("SetJSON", "topics:search:7:kuber", fresh, time.Minute).Return(nil)

	topics, err := svc.Search("kuber")
	require.NoError(t, err)
	assert.Equal(t, fresh, topics)
	cache.AssertExpectations(t)
}

// A missing version key is minted on first use, so a cold cache still
// serves and stores search results.
func TestTopicSearchMintsVersion(t *testing.T) {
	repo := new(MockTopicRepository)
	cache := new(MockCacheRepository)
	svc := newTestTopicService(t, repo, cache)

	fresh := []entity.Topic{{ID: "t1", Area: "AI", Title: "Model distillation"}}
	cache.On("GetJSON", topicVersionKey, mock.Anything).Return(apperrors.ErrNotFound, nil)
	cache.On("SetJSON", topicVersionKey, mock.AnythingOfType("int64"), time.Duration(0)).Return(nil)
	cache.On("GetJSON", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, topicSearchKeyPrefix+":")
	}), mock.Anything).Return(apperrors.ErrNotFound, nil)
	repo.On("Search", "distillation", maxSearchTopics).Return(fresh, nil)
	cache.On("SetJSON", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, topicSearchKeyPrefix+":")
	}), fresh, time.Minute).Return(nil)

	topics, err := svc.Search("distillation")
	require.NoError(t, err)
	assert.Equal(t, fresh, topics)
	cache.AssertExpectations(t)
}

// A broken cache must degrade to the database, not fail the search.
func TestTopicSearchCacheFailureFallsThrough(t *testing.T) {
	repo := new(MockTopicRepository)
	cache := new(MockCacheRepository)
	svc := newTestTopicService(t, repo, cache)

	fresh := []entity.Topic{{ID: "t1", Area: "CLOUD", Title: "Kubernetes Basics"}}
	cache.On("GetJSON", topicVersionKey, mock.Anything).Return(errors.New("redis down"), nil)
	repo.On("Search", "kuber", maxSearchTopics).Return(fresh, nil)

	topics, err := svc.Search("kuber")
	require.NoError(t, err)
	assert.Equal(t, fresh, topics)
	cache.AssertNotCalled(t, "SetJSON", mock.Anything, mock.Anything, mock.Anything)
}

func TestTopicSearchEmptyQuery(t *testing.T) {
	repo := new(MockTopicRepository)
	cache := new(MockCacheRepository)
	svc := newTestTopicService(t, repo, cache)

	for _, q := range []string{"", "   "} {
		_, err := svc.Search(q)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
	repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestTopicCreateInvalidatesCache(t *testing.T) {
	repo := new(MockTopicRepository)
	cache := new(MockCacheRepository)
	svc := newTestTopicService(t, repo, cache)

	repo.On("Create", mock.AnythingOfType("*entity.Topic")).Return(nil)
	cache.On("Delete", topicListCacheKey).Return(nil)
	cache.On("Delete", topicVersionKey).Return(nil)

	topic, err := svc.Create("AI", "Model distillation at the edge", nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, topic.ID)
	// Both the list entry and the search version must go, so stale search
	// results cannot outlive an admin write.
	cache.AssertExpectations(t)
}

func TestTopicCreateValidation(t *testing.T) {
	repo := new(MockTopicRepository)
	cache := new(MockCacheRepository)
	svc := newTestTopicService(t, repo, cache)

	_, err := svc.Create("", "Title", nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.Create("AI", "", nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestTopicUpdateMissing(t *testing.T) {
	repo := new(MockTopicRepository)
	cache := new(MockCacheRepository)
	svc := newTestTopicService(t, repo, cache)

	repo.On("Update", mock.AnythingOfType("*entity.Topic")).Return(apperrors.ErrNotFound)

	_, err := svc.Update("missing", "AI", "Title", nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	cache.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestTopicDeleteInvalidatesCache(t *testing.T) {
	repo := new(MockTopicRepository)
	cache := new(MockCacheRepository)
	svc := newTestTopicService(t, repo, cache)

	repo.On("Delete", "t1").Return(nil)
	cache.On("Delete", topicListCacheKey).Return(nil)
	cache.On("Delete", topicVersionKey).Return(nil)

	require.NoError(t, svc.Delete("t1"))
	cache.AssertExpectations(t)
}

func TestAdminListUncapped(t *testing.T) {
	repo := new(MockTopicRepository)
	cache := new(MockCacheRepository)
	svc := newTestTopicService(t, repo, cache)

	repo.On("List", 0).Return([]entity.Topic{}, nil)

	_, err := svc.AdminList()
	require.NoError(t, err)
	cache.AssertNotCalled(t, "GetJSON", mock.Anything, mock.Anything)
}
