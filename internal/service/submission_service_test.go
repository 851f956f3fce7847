package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
	apperrors "github.com/yourusername/topic-advisor-api/internal/pkg/errors"
	"github.com/yourusername/topic-advisor-api/internal/service/recommender"
)

// MockSubmissionRepository implements repository.SubmissionRepository.
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(submission *entity.Submission) error {
	args := m.Called(submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) GetByID(id string) (*entity.Submission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ListByUser(userID string, limit int) ([]entity.Submission, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ListRecent(limit int) ([]entity.Submission, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ClaimBySessionToken(userID, sessionToken string) (int64, error) {
	args := m.Called(userID, sessionToken)
	return args.Get(0).(int64), args.Error(1)
}

func newTestSubmissionService(t *testing.T, repo *MockSubmissionRepository) *SubmissionService {
	t.Helper()
	svc, err := NewSubmissionService(repo)
	require.NoError(t, err)
	return svc
}

func testAnswers() map[string]int {
	answers := make(map[string]int, len(recommender.Questions))
	for _, q := range recommender.Questions {
		answers[q.ID] = 3
	}
	return answers
}

func TestCreateUserSubmission(t *testing.T) {
	repo := new(MockSubmissionRepository)
	svc := newTestSubmissionService(t, repo)

	repo.On("Create", mock.AnythingOfType("*entity.Submission")).Return(nil)

	submission, err := svc.Create("u1", "", testAnswers(), 42000)
	require.NoError(t, err)

	require.NotNil(t, submission.UserID)
	assert.Equal(t, "u1", *submission.UserID)
	assert.Nil(t, submission.SessionToken)
	assert.Equal(t, int64(42000), submission.DurationMs)
	assert.Len(t, submission.TopAreas, 3)
	assert.Len(t, submission.Scores, len(recommender.Areas))
	assert.Contains(t, []string{recommender.ThesisResearch, recommender.ThesisPractical}, submission.ThesisType)
	repo.AssertExpectations(t)
}

func TestCreateAnonymousSubmission(t *testing.T) {
	repo := new(MockSubmissionRepository)
	svc := newTestSubmissionService(t, repo)

	repo.On("Create", mock.AnythingOfType("*entity.Submission")).Return(nil)

	submission, err := svc.Create("", "3b8e3f9a-4c1d-4f2e-9a6b-1c2d3e4f5a6b", testAnswers(), 0)
	require.NoError(t, err)

	assert.Nil(t, submission.UserID)
	require.NotNil(t, submission.SessionToken)
	assert.Equal(t, "3b8e3f9a-4c1d-4f2e-9a6b-1c2d3e4f5a6b", *submission.SessionToken)
}

// An authenticated owner wins over a stray session token: both are passed,
// but the stored row must carry only the user.
func TestCreateAuthenticatedIgnoresSessionToken(t *testing.T) {
	repo := new(MockSubmissionRepository)
	svc := newTestSubmissionService(t, repo)

	repo.On("Create", mock.AnythingOfType("*entity.Submission")).Return(nil)

	submission, err := svc.Create("u1", "3b8e3f9a-4c1d-4f2e-9a6b-1c2d3e4f5a6b", testAnswers(), 0)
	require.NoError(t, err)

	require.NotNil(t, submission.UserID)
	assert.Nil(t, submission.SessionToken)
}

func TestCreateRequiresOwner(t *testing.T) {
	repo := new(MockSubmissionRepository)
	svc := newTestSubmissionService(t, repo)

	_, err := svc.Create("", "", testAnswers(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestClaim(t *testing.T) {
	repo := new(MockSubmissionRepository)
	svc := newTestSubmissionService(t, repo)

	repo.On("ClaimBySessionToken", "u1", "3b8e3f9a-4c1d-4f2e-9a6b-1c2d3e4f5a6b").Return(int64(2), nil).Once()
	repo.On("ClaimBySessionToken", "u1", "3b8e3f9a-4c1d-4f2e-9a6b-1c2d3e4f5a6b").Return(int64(0), nil).Once()

	claimed, err := svc.Claim("u1", "3b8e3f9a-4c1d-4f2e-9a6b-1c2d3e4f5a6b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), claimed)

	// Replaying the same token claims nothing and is not an error.
	claimed, err = svc.Claim("u1", "3b8e3f9a-4c1d-4f2e-9a6b-1c2d3e4f5a6b")
	require.NoError(t, err)
	assert.Equal(t, int64(0), claimed)
}

func TestListByUserCapped(t *testing.T) {
	repo := new(MockSubmissionRepository)
	svc := newTestSubmissionService(t, repo)

	repo.On("ListByUser", "u1", 50).Return([]entity.Submission{}, nil)

	_, err := svc.ListByUser("u1")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetVisible(t *testing.T) {
	owner := "u1"
	tests := []struct {
		name     string
		userID   *string
		callerID string
		wantErr  error
	}{
		{"own submission", &owner, "u1", nil},
		{"foreign owned submission", &owner, "u2", apperrors.ErrNotFound},
		{"owned, anonymous caller", &owner, "", nil},
		{"unclaimed, any caller", nil, "u2", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockSubmissionRepository)
			svc := newTestSubmissionService(t, repo)
			repo.On("GetByID", "s1").Return(&entity.Submission{ID: "s1", UserID: tt.userID}, nil)

			submission, err := svc.GetVisible("s1", tt.callerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "s1", submission.ID)
		})
	}
}

func TestGetVisibleMissing(t *testing.T) {
	repo := new(MockSubmissionRepository)
	svc := newTestSubmissionService(t, repo)

	repo.On("GetByID", "missing").Return(nil, apperrors.ErrNotFound)

	_, err := svc.GetVisible("missing", "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListRecentCapped(t *testing.T) {
	repo := new(MockSubmissionRepository)
	svc := newTestSubmissionService(t, repo)

	repo.On("ListRecent", 500).Return([]entity.Submission{}, nil)

	_, err := svc.ListRecent()
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
